package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jontstaz/cinephage/internal/config"
	"github.com/jontstaz/cinephage/internal/format"
	"github.com/jontstaz/cinephage/internal/release"
	"github.com/jontstaz/cinephage/internal/scoring"
	"github.com/jontstaz/cinephage/internal/ui"
)

var (
	profileFile string
	formatFiles []string
	jsonOutput  bool
	sizeMB      float64
	mediaType   string
	episodes    int
	protocol    string
	plainOutput bool

	// Version information (set via -ldflags during build)
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

const exampleConfig = `[formats]
files = ["/path/to/your/formats.toml"]
disable_builtins = false

[scoring]
profile_file = ""  # empty means the built-in default profile

[logging]
level = "info"  # debug, info, warn, error
`

var rootCmd = &cobra.Command{
	Use:   "cinephage",
	Short: "Release name parser and quality scorer for movies and TV",
	Long: ui.FormatASCIIHeader() + "\n\n" +
		"cinephage parses scene-style release names into structured quality\n" +
		"attributes, matches them against custom formats, and scores them so\n" +
		"releases can be ranked, filtered and upgrade-checked.",
}

var parseCmd = &cobra.Command{
	Use:   "parse <release-title>",
	Short: "Parse a release title into structured attributes",
	Args:  cobra.ExactArgs(1),
	Run:   runParse,
}

var scoreCmd = &cobra.Command{
	Use:   "score <release-title>",
	Short: "Score a release title against the active profile",
	Args:  cobra.ExactArgs(1),
	Run:   runScore,
}

var compareCmd = &cobra.Command{
	Use:   "compare <existing-title> <candidate-title>",
	Short: "Decide whether the candidate release upgrades the existing one",
	Args:  cobra.ExactArgs(2),
	Run:   runCompare,
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the active custom formats and their scores",
	Run:   runFormats,
}

var rankCmd = &cobra.Command{
	Use:   "rank [titles-file]",
	Short: "Score a batch of release titles and browse them ranked",
	Long: "Reads release titles, one per line, from the given file or stdin,\n" +
		"scores each against the active profile, and opens a TUI sorted best\n" +
		"first. Use --plain for non-interactive text output.",
	Args: cobra.MaximumNArgs(1),
	Run:  runRank,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration file location and contents",
	Run:   runConfig,
}

var configAddCmd = &cobra.Command{
	Use:   "add <format-file>",
	Short: "Add a custom format file to the configuration",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigAdd,
}

var configRemoveCmd = &cobra.Command{
	Use:   "remove <format-file>",
	Short: "Remove a custom format file from the configuration",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigRemove,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cinephage %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profileFile, "profile", "", "quality profile file (TOML or YAML)")
	rootCmd.PersistentFlags().StringArrayVar(&formatFiles, "formats", nil, "extra custom format files (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of styled text")

	scoreCmd.Flags().Float64Var(&sizeMB, "size-mb", 0, "release size in MB for size validation")
	scoreCmd.Flags().StringVar(&mediaType, "media", "movie", "media type for size bounds (movie or episode)")
	scoreCmd.Flags().IntVar(&episodes, "episodes", 1, "episode count for season pack size checks")
	scoreCmd.Flags().StringVar(&protocol, "protocol", "", "acquisition protocol (torrent or usenet)")

	rankCmd.Flags().BoolVar(&plainOutput, "plain", false, "print the ranking instead of opening the TUI")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	configCmd.AddCommand(configAddCmd)
	configCmd.AddCommand(configRemoveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runParse(cmd *cobra.Command, args []string) {
	rel := release.Parse(args[0])

	if jsonOutput {
		printJSON(rel)
		return
	}
	fmt.Println(ui.RenderParsed(rel))
}

func runScore(cmd *cobra.Command, args []string) {
	engine, profile := setup()

	var sizeCtx *scoring.SizeContext
	var sizeBytes int64
	if sizeMB > 0 {
		sizeBytes = int64(sizeMB * 1024 * 1024)
		sizeCtx = &scoring.SizeContext{
			Media:        scoring.MediaType(mediaType),
			EpisodeCount: episodes,
		}
	}

	result := engine.Score(args[0], profile, scoring.Attributes{Protocol: scoring.Protocol(protocol)}, sizeBytes, sizeCtx)

	if jsonOutput {
		printJSON(result)
		return
	}
	fmt.Println(ui.RenderParsed(result.Release))
	fmt.Println(ui.RenderResult(result))
}

func runCompare(cmd *cobra.Command, args []string) {
	engine, profile := setup()

	decision := engine.IsUpgrade(args[0], args[1], profile, scoring.UpgradeOptions{})

	if jsonOutput {
		printJSON(decision)
		return
	}
	fmt.Println(ui.RenderUpgrade(decision))
}

func runFormats(cmd *cobra.Command, args []string) {
	cfg := loadAppConfig()
	registry := buildRegistry(cfg)
	profile := loadScoringProfile(cfg)

	if jsonOutput {
		printJSON(registry.Formats())
		return
	}

	for _, f := range registry.Formats() {
		score := profile.ScoreFor(f.ID, f.DefaultScore)
		if f.IsBan() {
			fmt.Printf("%-24s %8s  %s\n", f.ID, "BAN", f.Name)
		} else {
			fmt.Printf("%-24s %8d  %s\n", f.ID, score, f.Name)
		}
	}
}

func runRank(cmd *cobra.Command, args []string) {
	engine, profile := setup()

	titles, err := readTitles(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading titles: %v\n", err)
		os.Exit(1)
	}
	if len(titles) == 0 {
		fmt.Fprintln(os.Stderr, "No titles to rank")
		os.Exit(1)
	}

	results := make([]scoring.Result, 0, len(titles))
	for _, title := range titles {
		results = append(results, engine.Score(title, profile, scoring.Attributes{}, 0, nil))
	}

	if jsonOutput {
		printJSON(results)
		return
	}

	if plainOutput {
		printPlainRanking(results)
		return
	}

	p := tea.NewProgram(ui.NewRankModel(results), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func runConfig(cmd *cobra.Command, args []string) {
	configPath, err := config.ConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Configuration file: %s\n\n", configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Println("Config file does not exist. Create it with:")
		fmt.Println("\n  mkdir -p ~/.config/cinephage")
		fmt.Println("  cat > ~/.config/cinephage/config.toml <<EOF")
		fmt.Print(exampleConfig)
		fmt.Println("EOF")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Current configuration:")
	fmt.Printf("\nCustom format files (%d):\n", len(cfg.Formats.Files))
	for _, path := range cfg.Formats.Files {
		fmt.Printf("  - %s\n", path)
	}
	fmt.Printf("  Built-in formats: %v\n", !cfg.Formats.DisableBuiltins)

	fmt.Printf("\nScoring:\n")
	if cfg.Scoring.ProfileFile == "" {
		fmt.Println("  Profile: built-in default")
	} else {
		fmt.Printf("  Profile: %s\n", cfg.Scoring.ProfileFile)
	}

	fmt.Printf("\nLogging:\n")
	fmt.Printf("  Level: %s\n", cfg.Logging.Level)
}

func runConfigAdd(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.AddFormatFile(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Added format file: %s\n", args[0])
}

func runConfigRemove(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.RemoveFormatFile(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Removed format file: %s\n", args[0])
}

// setup loads config, logging, the format registry and the profile in
// one go for the scoring commands.
func setup() (*scoring.Engine, *scoring.Profile) {
	cfg := loadAppConfig()
	return scoring.NewEngine(buildRegistry(cfg)), loadScoringProfile(cfg)
}

func loadAppConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg)
	return cfg
}

func setupLogging(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
}

func buildRegistry(cfg *config.Config) *format.Registry {
	var formats []*format.CustomFormat
	if !cfg.Formats.DisableBuiltins {
		formats = format.DefaultFormats()
	}

	files := append(append([]string{}, cfg.Formats.Files...), formatFiles...)
	for _, path := range files {
		loaded, err := format.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading formats from %s: %v\n", path, err)
			os.Exit(1)
		}
		formats = append(formats, loaded...)
	}

	return format.NewRegistry(formats...)
}

func loadScoringProfile(cfg *config.Config) *scoring.Profile {
	path := cfg.Scoring.ProfileFile
	if profileFile != "" {
		path = profileFile
	}
	if path == "" {
		return scoring.DefaultProfile()
	}

	profile, err := scoring.LoadProfile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}
	return profile
}

func readTitles(args []string) ([]string, error) {
	input := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		input = f
	}

	var titles []string
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		titles = append(titles, line)
	}
	return titles, scanner.Err()
}

func printPlainRanking(results []scoring.Result) {
	// Same order as the TUI, best raw score first
	sorted := make([]scoring.Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].TotalScore > sorted[b].TotalScore
	})

	for i, res := range sorted {
		status := "ok"
		switch {
		case res.IsBanned:
			status = "banned"
		case !res.MeetsMinimum:
			status = "below-min"
		}
		norm := scoring.Normalize(res.TotalScore)
		fmt.Printf("%3d. %8d  %6.0f  %-10s %s\n", i+1, res.TotalScore, norm, status, res.Release.OriginalTitle)
	}
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
