package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/vsariola/toneboard"
	"github.com/vsariola/toneboard/engine"
	"github.com/vsariola/toneboard/keys"
	"github.com/vsariola/toneboard/oto"
	"github.com/vsariola/toneboard/version"
)

func main() {
	help := flag.Bool("h", false, "Show help.")
	output := flag.String("o", "", "Name of the output file, without extension. Defaults to the oscillator type.")
	playFlag := flag.Bool("p", false, "Play the rendered notes (default behaviour when no other output is defined).")
	rawOut := flag.Bool("r", false, "Output the rendered notes as .raw file.")
	wavOut := flag.Bool("w", false, "Output the rendered notes as .wav file.")
	pcm := flag.Bool("c", false, "Convert audio to 16-bit signed PCM when outputting.")
	settingsFile := flag.String("settings", "", "Oscillator and envelope settings as a .yml `file`.")
	oscType := flag.String("type", "", "Oscillator type, e.g. fmsquare. Overrides the settings.")
	notes := flag.String("notes", "", "Comma separated notes to play, e.g. C4,E4,G4. Defaults to every key of the keyboard.")
	duration := flag.String("d", "16n", "How long each note is held.")
	step := flag.String("step", "8n", "Time between the starts of two notes.")
	bpm := flag.Float64("bpm", engine.DefaultBPM, "Tempo for the note durations.")
	volume := flag.Float64("volume", engine.DefaultVolume, "Output gain, linear.")
	rate := flag.Int("rate", engine.DefaultSampleRate, "Sample rate of the output.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if !*rawOut && !*wavOut {
		*playFlag = true
	}
	settings := toneboard.DefaultSettings()
	if *settingsFile != "" {
		var err error
		if settings, err = toneboard.LoadSettings(*settingsFile); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
	if *oscType != "" {
		config, err := toneboard.ParseOscillatorType(*oscType)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		settings.Oscillator = config
	}
	synth, err := engine.New(settings, *rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create synth: %v\n", err)
		os.Exit(1)
	}
	if err := synth.SetBPM(*bpm); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *volume < 0 || math.IsNaN(*volume) || math.IsInf(*volume, 0) {
		fmt.Fprintf(os.Stderr, "invalid volume %v\n", *volume)
		os.Exit(1)
	}
	synth.SetVolume(float32(*volume))
	var noteList []string
	if *notes != "" {
		noteList = strings.Split(*notes, ",")
	} else {
		for _, k := range keys.Flatten(keys.Standard()) {
			noteList = append(noteList, k.ID())
		}
	}
	buffer, err := synth.Sequence(noteList, *duration, *step)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not render notes: %v\n", err)
		os.Exit(1)
	}
	name := *output
	if name == "" {
		name = settings.Oscillator.Type()
	}
	write := func(extension string, contents []byte) {
		if err := os.WriteFile(name+extension, contents, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "could not write file %v: %v\n", name+extension, err)
			os.Exit(1)
		}
	}
	if *rawOut {
		raw, err := buffer.Raw(*pcm)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not generate .raw file: %v\n", err)
			os.Exit(1)
		}
		write(".raw", raw)
	}
	if *wavOut {
		wav, err := buffer.Wav(*pcm, *rate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not generate .wav file: %v\n", err)
			os.Exit(1)
		}
		write(".wav", wav)
	}
	if *playFlag {
		audioContext, err := oto.NewContext(*rate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not acquire oto AudioContext: %v\n", err)
			os.Exit(1)
		}
		if err := play(audioContext, buffer); err != nil {
			fmt.Fprintf(os.Stderr, "playback failed: %v\n", err)
			os.Exit(1)
		}
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Toneboard command line utility for rendering notes played on the keyboard.\nUsage: %s [flags]\n", os.Args[0])
	flag.PrintDefaults()
}
