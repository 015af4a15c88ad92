package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vsariola/toneboard"
	"github.com/vsariola/toneboard/keys"
	"github.com/vsariola/toneboard/options"
	"github.com/vsariola/toneboard/render"
	"github.com/vsariola/toneboard/version"
)

func main() {
	help := flag.Bool("h", false, "Show help.")
	output := flag.String("o", "", "Write the page to `file` instead of standard output.")
	settingsFile := flag.String("settings", "", "Initialize the controls from the settings in a .yml `file`.")
	templateDir := flag.String("t", "", "Use the .html templates in `directory` instead of the built-in ones.")
	title := flag.String("title", "", "Title of the page.")
	octaves := flag.Int("octaves", keys.DefaultOctaves, "Number of octaves on the keyboard.")
	lowOctave := flag.Int("low", keys.DefaultLowOctave, "Octave of the lowest key.")
	fragment := flag.String("fragment", "", "Only output a fragment of the page: keys or options.")
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
	if err := run(*output, *settingsFile, *templateDir, *title, *fragment, *octaves, *lowOctave); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(output, settingsFile, templateDir, title, fragment string, octaves, lowOctave int) error {
	settings := toneboard.DefaultSettings()
	if settingsFile != "" {
		var err error
		if settings, err = toneboard.LoadSettings(settingsFile); err != nil {
			return err
		}
	}
	var r *render.Renderer
	var err error
	if templateDir != "" {
		r, err = render.NewFromTemplates(templateDir)
	} else {
		r, err = render.New()
	}
	if err != nil {
		return err
	}
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("could not create file %v: %v", output, err)
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	groups := keys.Layout(toneboard.Scale, octaves, lowOctave)
	controls := options.Generate(options.Specs, settings)
	switch fragment {
	case "":
		err = r.Page(bw, render.Page{Title: title, Scripts: render.DefaultScripts, Keys: groups, Options: controls})
	case "keys":
		err = writeString(bw, r.Keys, groups)
	case "options":
		err = writeString(bw, r.Options, controls)
	default:
		return fmt.Errorf("unknown fragment %q, expected keys or options", fragment)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

func writeString[T any](w io.Writer, f func(T) (string, error), data T) error {
	s, err := f(data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Toneboard command line utility for writing the keyboard as an HTML page.\nUsage: %s [flags]\n", os.Args[0])
	flag.PrintDefaults()
}
