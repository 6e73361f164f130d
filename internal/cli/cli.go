// SPDX-License-Identifier: EPL-2.0

// Package cli implements the wavetool command line interface.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dspkit/wavetool"
	"github.com/dspkit/wavetool/console"
	"github.com/dspkit/wavetool/formats/wav"
	"github.com/dspkit/wavetool/memtrack"
	"github.com/dspkit/wavetool/stopwatch"
)

const Version = "1.0.0"

// CLI bundles the cobra command tree with the filesystem it operates on.
// Tests inject an in-memory filesystem.
type CLI struct {
	rootCmd *cobra.Command
	fsys    afero.Fs
}

// New builds the command tree over fsys. A nil fsys means the OS filesystem.
func New(fsys afero.Fs) *CLI {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	c := &CLI{fsys: fsys}

	c.rootCmd = &cobra.Command{
		Use:           "wavetool",
		Short:         "Inspect and convert audio files",
		Long:          "wavetool decodes WAV, MP3, Ogg Vorbis, and AIFF audio and writes WAV output,\nwith optional mono mixdown, peak normalisation, and resampling.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	c.rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: level,
		})))
	}

	c.rootCmd.AddCommand(c.newInfoCommand())
	c.rootCmd.AddCommand(c.newConvertCommand())
	return c
}

// Execute runs the command tree against args and returns a process exit code.
func (c *CLI) Execute(args []string) int {
	c.rootCmd.SetArgs(args)
	if err := c.rootCmd.Execute(); err != nil {
		fmt.Fprintf(c.rootCmd.ErrOrStderr(), "%swavetool: %v%s\n", console.Red, err, console.Reset)
		return 1
	}
	return 0
}

// SetOutput redirects command output, for tests.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

func (c *CLI) newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print format details of an audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := wavetool.OpenFS(c.fsys, args[0])
			if err != nil {
				return err
			}

			peak := 0.0
			for _, s := range buf.Samples {
				if a := math.Abs(s); a > peak {
					peak = a
				}
			}
			duration := time.Duration(float64(buf.Length()) / float64(buf.SampleRate) * float64(time.Second))

			cmd.Printf("%s%s%s\n", console.Bright, args[0], console.Reset)
			cmd.Printf("  sample rate: %d Hz\n", buf.SampleRate)
			cmd.Printf("  channels:    %d\n", buf.Channels)
			cmd.Printf("  frames:      %d\n", buf.Length())
			cmd.Printf("  duration:    %v\n", duration.Round(time.Millisecond))
			cmd.Printf("  peak:        %.4f\n", peak)
			return nil
		},
	}
}

func (c *CLI) newConvertCommand() *cobra.Command {
	var (
		formatName string
		mono       bool
		normalize  bool
		reduceOnly bool
		peakLevel  float64
		rate       int
		reportMem  bool
		reportTime bool
	)

	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert an audio file to WAV",
		Long:  "Convert decodes the input by extension and writes a WAV file, applying the\nrequested processing steps in order: resample, mono mixdown, normalise.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := wav.ParseFormat(formatName)
			if err != nil {
				return err
			}

			var mem memtrack.Snapshot
			if reportMem && memtrack.Implemented {
				mem = memtrack.Take()
			}
			watch := stopwatch.NewUncompensated()

			buf, err := wavetool.OpenFS(c.fsys, args[0])
			if err != nil {
				return err
			}
			slog.Debug("decoded input",
				"file", args[0],
				"rate", buf.SampleRate,
				"channels", buf.Channels,
				"frames", buf.Length())

			if rate > 0 {
				buf, err = wavetool.Resample(buf, rate)
				if err != nil {
					return err
				}
			}
			if mono {
				buf.MakeMono()
			}
			if normalize || reduceOnly {
				buf.Normalize(reduceOnly, peakLevel)
			}

			if res := buf.Write(args[1], format); !res.OK() {
				return res
			}
			elapsed := watch.Lap()

			slog.Info("wrote output",
				"file", args[1],
				"format", format,
				"frames", buf.Length())
			if reportTime {
				cmd.Printf("elapsed: %v\n", elapsed.Round(time.Microsecond))
			}
			if reportMem && memtrack.Implemented {
				diff := mem.Diff()
				cmd.Printf("allocated: %d bytes, live: %d bytes\n", diff.AllocBytes, diff.CurrentBytes)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "pcm16", "output sample format: pcm16, pcm24, or float32")
	cmd.Flags().BoolVar(&mono, "mono", false, "mix all channels down to mono")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "scale the signal so its peak hits the target level")
	cmd.Flags().BoolVar(&reduceOnly, "reduce-only", false, "normalise, but only ever attenuate")
	cmd.Flags().Float64Var(&peakLevel, "peak", 0, "target peak level for --normalize (0 means the default)")
	cmd.Flags().IntVar(&rate, "rate", 0, "resample to this rate in Hz (0 keeps the input rate)")
	cmd.Flags().BoolVar(&reportMem, "mem", false, "report heap allocation for the conversion")
	cmd.Flags().BoolVar(&reportTime, "time", false, "report wall time for the conversion")
	return cmd
}
