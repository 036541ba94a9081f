package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/groovesmith/drumgen/internal/config"
	"github.com/groovesmith/drumgen/internal/groove"
	"github.com/groovesmith/drumgen/internal/midi"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "drumgen",
	Short: "Generate humanized drum patterns as MIDI files",
	Long: `drumgen builds General MIDI drum patterns from style, density and
fill controls, and writes them as Standard MIDI Files.

Examples:
  drumgen --style pop_punk --tempo 165 --bars 8
  drumgen --style reggae_ska --kick one_drop --hihat skank -o skank.mid
  drumgen --fills-only --rudiment-type rolls --rudiment-intensity 0.8
  drumgen --count 5 --seed 42`,
	Version: version,
	RunE:    runGenerate,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available styles, patterns, sections and fills",
	RunE:  runList,
}

var (
	tempo             int
	style             string
	bars              int
	density           float64
	variation         float64
	syncopation       float64
	fillFrequency     float64
	kickPattern       string
	hihatPattern      string
	section           string
	fillsOnly         bool
	rudimentType      string
	rudimentIntensity float64
	noHumanize        bool
	seed              int64
	outputPath        string
	count             int
)

func init() {
	rootCmd.AddCommand(listCmd)

	defaults := groove.DefaultParams()

	rootCmd.Flags().IntVarP(&tempo, "tempo", "t", defaults.Tempo, "Tempo in BPM")
	rootCmd.Flags().StringVarP(&style, "style", "s", string(defaults.Style), "Style (pop_punk, singer_songwriter, reggae_ska)")
	rootCmd.Flags().IntVarP(&bars, "bars", "b", defaults.Bars, "Number of 4/4 bars")
	rootCmd.Flags().Float64Var(&density, "density", defaults.Density, "Hit density 0.0-1.0")
	rootCmd.Flags().Float64Var(&variation, "variation", defaults.Variation, "Embellishment amount 0.0-1.0")
	rootCmd.Flags().Float64Var(&syncopation, "syncopation", defaults.Syncopation, "Off-beat kick placement 0.0-1.0")
	rootCmd.Flags().Float64Var(&fillFrequency, "fill-frequency", defaults.FillFrequency, "Chance of a fill on the last bar 0.0-1.0")
	rootCmd.Flags().StringVar(&kickPattern, "kick", string(defaults.KickPattern), "Kick pattern (punk, four_floor, half_time, double, skank, one_drop, d_beat)")
	rootCmd.Flags().StringVar(&hihatPattern, "hihat", string(defaults.HihatPattern), "Hi-hat pattern (eighth, sixteenth, ride, open_closed, skank, swing)")
	rootCmd.Flags().StringVar(&section, "section", "", "Song section (intro, verse, pre_chorus, chorus, bridge, breakdown, outro)")
	rootCmd.Flags().BoolVar(&fillsOnly, "fills-only", false, "Every bar is a fill (rudiment practice mode)")
	rootCmd.Flags().StringVar(&rudimentType, "rudiment-type", string(defaults.RudimentType), "Fill subset (mixed, rolls, diddles, flams, drags)")
	rootCmd.Flags().Float64Var(&rudimentIntensity, "rudiment-intensity", defaults.RudimentIntensity, "Fill busyness 0.0-1.0")
	rootCmd.Flags().BoolVar(&noHumanize, "no-humanize", false, "Disable velocity humanization (static velocities)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for reproducible output (0 = random)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output .mid path (default: generated/generated_drums/<auto-name>.mid)")
	rootCmd.Flags().IntVarP(&count, "count", "c", 1, "Number of variations to generate")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	p := groove.DefaultParams()
	p.Tempo = tempo
	p.Style = groove.Style(style)
	p.Bars = bars
	p.Density = density
	p.Variation = variation
	p.Syncopation = syncopation
	p.FillFrequency = fillFrequency
	p.KickPattern = groove.KickPattern(kickPattern)
	p.HihatPattern = groove.HihatPattern(hihatPattern)
	p.Section = groove.Section(section)
	p.FillsOnly = fillsOnly
	p.RudimentType = groove.RudimentType(rudimentType)
	p.RudimentIntensity = rudimentIntensity
	p.Humanize = !noHumanize

	if err := p.Validate(); err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	fmt.Println("🥁 DRUMGEN")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Style:       %s\n", p.Style)
	fmt.Printf("Tempo:       %d BPM\n", p.Tempo)
	fmt.Printf("Bars:        %d\n", p.Bars)
	fmt.Printf("Kick:        %s\n", p.KickPattern)
	fmt.Printf("Hi-hat:      %s\n", p.HihatPattern)
	if p.Section != "" {
		fmt.Printf("Section:     %s\n", p.Section)
	}
	if p.FillsOnly {
		fmt.Printf("Fills only:  %s (intensity %.2f)\n", p.RudimentType, p.RudimentIntensity)
	}
	fmt.Println(strings.Repeat("=", 40))

	for i := 0; i < count; i++ {
		variant := p
		if seed != 0 {
			s := seed + int64(i)
			variant.Seed = &s
		}

		gen, err := groove.New(variant)
		if err != nil {
			return err
		}
		pattern := gen.Generate()

		path := outputPath
		if path == "" || count > 1 {
			dir := config.Load().OutputDir
			if outputPath != "" {
				dir = outputPath
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			path = filepath.Join(dir, midi.Filename(p, i, count))
		}

		if err := midi.WriteFile(pattern, path); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		fmt.Printf("✅ %s (complexity %d/5) → %s\n", pattern.Description, pattern.Complexity, path)
	}

	return nil
}

func runList(_ *cobra.Command, _ []string) error {
	fmt.Println("Styles:")
	for _, s := range groove.Styles() {
		fmt.Printf("  %s\n", s)
	}
	fmt.Println("\nKick patterns:")
	for _, k := range groove.KickPatterns() {
		fmt.Printf("  %s\n", k)
	}
	fmt.Println("\nHi-hat patterns:")
	for _, h := range groove.HihatPatterns() {
		fmt.Printf("  %s\n", h)
	}
	fmt.Println("\nSections:")
	for _, s := range groove.Sections() {
		fmt.Printf("  %-12s %s\n", s.Name, s.Description)
	}
	fmt.Println("\nRudiment types:")
	for _, r := range groove.RudimentTypes() {
		fmt.Printf("  %s\n", r)
	}
	fmt.Println("\nFills:")
	for _, f := range groove.FillNames() {
		fmt.Printf("  %s\n", f)
	}
	return nil
}
