package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"gioui.org/app"

	"github.com/vsariola/toneboard"
	"github.com/vsariola/toneboard/board"
	"github.com/vsariola/toneboard/engine"
	"github.com/vsariola/toneboard/gioui"
	"github.com/vsariola/toneboard/oto"
	"github.com/vsariola/toneboard/version"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var memprofile = flag.String("memprofile", "", "write memory profile to `file`")
var settingsFile = flag.String("settings", "", "start from the oscillator and envelope settings in a .yml `file`")
var sampleRate = flag.Int("rate", engine.DefaultSampleRate, "audio sample rate")
var versionFlag = flag.Bool("v", false, "print version")

func main() {
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	var f *os.File
	if *cpuprofile != "" {
		var err error
		f, err = os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
	}
	settings := toneboard.DefaultSettings()
	if *settingsFile != "" {
		var err error
		if settings, err = toneboard.LoadSettings(*settingsFile); err != nil {
			log.Fatal(err)
		}
	}
	synth, err := engine.New(settings, *sampleRate)
	if err != nil {
		log.Fatal(err)
	}
	var audioContext toneboard.AudioContext
	if audioContext, err = oto.NewContext(synth.SampleRate()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	broker := board.NewBroker()
	model := board.NewModel(board.NewRemote(broker), settings)
	player := board.NewPlayer(broker, synth)

	boardUi := gioui.NewBoard(model, broker)
	audioCloser := audioContext.Play(func(buf toneboard.AudioBuffer) error {
		player.Process(buf)
		return nil
	})

	go func() {
		boardUi.Main()
		if err := audioCloser.Close(); err != nil {
			log.Print(err)
		}
		stopped := make(chan error, 1)
		go func() { stopped <- audioCloser.Wait() }()
		if err, ok := board.TimeoutReceive(stopped, 3*time.Second); !ok {
			log.Print("timed out waiting for the audio output to stop")
		} else if err != nil {
			log.Print(err)
		}
		if *cpuprofile != "" {
			pprof.StopCPUProfile()
			f.Close()
		}
		if *memprofile != "" {
			f, err := os.Create(*memprofile)
			if err != nil {
				log.Fatal("could not create memory profile: ", err)
			}
			defer f.Close()
			runtime.GC() // get up-to-date statistics
			if err := pprof.WriteHeapProfile(f); err != nil {
				log.Fatal("could not write memory profile: ", err)
			}
		}
		os.Exit(0)
	}()
	app.Main()
}
