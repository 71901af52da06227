package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alienxp03/splitdecision/internal/config"
	"github.com/alienxp03/splitdecision/internal/core"
	"github.com/alienxp03/splitdecision/internal/engine"
	"github.com/alienxp03/splitdecision/internal/export"
	"github.com/alienxp03/splitdecision/internal/gate"
	"github.com/alienxp03/splitdecision/internal/history"
	"github.com/alienxp03/splitdecision/internal/llm"
	"github.com/alienxp03/splitdecision/internal/prompt"
)

var (
	cfgPath   string
	appConfig *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "splitdecision",
	Short: "AI-powered comparison debates",
	Long: `splitdecision pits four AI agents against each other to settle any
"A vs B" question.

Each agent argues from its own angle across two rounds, then a judge
delivers a verdict with a winner and a confidence score.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgPath != "" {
			appConfig, err = config.LoadFrom(cfgPath)
		} else {
			appConfig, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (default: ~/.splitdecision/config.yaml)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(themesCmd)
}

func getStore() (history.Store, error) {
	return history.NewSQLiteStore(appConfig.History.DBPath)
}

// ============================================================================
// RUN COMMAND
// ============================================================================

var runCmd = &cobra.Command{
	Use:   "run [option A] [option B]",
	Short: "Run a debate between two options",
	Long: `Run a full debate comparing two options.

Examples:
  splitdecision run "React" "Svelte"
  splitdecision run "pizza" "tacos" --theme bar_argument
  splitdecision run "PostgreSQL" "MySQL" --category Tech --export markdown
  splitdecision run "boxing" "mma" --server https://splitdecision.example.com`,
	Args: cobra.ExactArgs(2),
	RunE: runDebate,
}

var (
	themeFlag    string
	categoryFlag string
	modelFlag    string
	apiKeyFlag   string
	serverFlag   string
	exportFlag   string
	outputFlag   string
	limitFlag    int
)

func init() {
	runCmd.Flags().StringVarP(&themeFlag, "theme", "t", "default", "Debate theme (see: splitdecision themes)")
	runCmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "Category label (e.g. Tech, Food, Sports)")
	runCmd.Flags().StringVarP(&modelFlag, "model", "m", "", "Model to use (default: gpt-4o-mini)")
	runCmd.Flags().StringVar(&apiKeyFlag, "api-key", "", "OpenAI API key (default: config or OPENAI_API_KEY)")
	runCmd.Flags().StringVar(&serverFlag, "server", "", "Proxy calls through a splitdecision server instead of calling OpenAI directly")
	runCmd.Flags().StringVar(&exportFlag, "export", "", "Export the transcript (markdown, json, pdf)")
	runCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Export file path (default: generated name)")
	historyCmd.Flags().IntVarP(&limitFlag, "limit", "n", history.DefaultRecent, "Number of comparisons to show")
}

// transcriptRecorder accumulates messages and the verdict for export.
type transcriptRecorder struct {
	messages []core.AgentMessage
	verdict  *core.Verdict
}

func runDebate(cmd *cobra.Command, args []string) error {
	optionA, optionB := args[0], args[1]

	theme := core.ThemeKey(themeFlag)
	if !core.ValidTheme(theme) {
		return fmt.Errorf("unknown theme %q (see: splitdecision themes)", themeFlag)
	}

	var validator engine.Validator
	var streamer engine.Streamer
	if serverFlag != "" {
		base := strings.TrimRight(serverFlag, "/")
		validator = engine.NewProxyValidator(base)
		streamer = engine.NewProxyStreamer(base)
	} else {
		apiKey := apiKeyFlag
		if apiKey == "" {
			apiKey = appConfig.OpenAI.APIKey
		}
		if apiKey == "" {
			return fmt.Errorf("no API key configured: pass --api-key, set OPENAI_API_KEY, or use --server")
		}
		client := llm.NewClient(apiKey)
		validator = engine.NewDirectValidator(gate.New(client, modelFlag, slog.Default()))
		streamer = engine.NewDirectStreamer(client)
	}

	store, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	eng := engine.New(validator, streamer, store, slog.Default())
	session := eng.NewSession(core.ComparisonRequest{
		OptionA:  optionA,
		OptionB:  optionB,
		Category: categoryFlag,
		Theme:    theme,
		Model:    modelFlag,
	})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\n\nInterrupted.")
		session.Abort()
		cancel()
	}()

	themeInfo := prompt.ThemeByKey(theme)
	fmt.Printf("\n⚖️  %s vs %s\n", optionA, optionB)
	fmt.Printf("   Theme: %s %s\n", themeInfo.Emoji, themeInfo.Label)
	if categoryFlag != "" {
		fmt.Printf("   Category: %s\n", categoryFlag)
	}
	fmt.Println(strings.Repeat("─", 60))

	recorder := &transcriptRecorder{}
	verdictShown := false

	cb := &engine.Callbacks{
		OnPhase: func(phase core.Phase) {
			if phase == core.PhaseValidating {
				fmt.Println("\nChecking the matchup...")
			}
		},
		OnInvalid: func(reason string) {
			fmt.Printf("\n🚫 %s\n", reason)
		},
		OnMessageStart: func(msg core.AgentMessage) {
			info := prompt.Agent(msg.AgentKey)
			fmt.Printf("\n%s %s (Round %d)\n", info.Emoji, info.Name, msg.Round)
			fmt.Println(strings.Repeat("─", 40))
		},
		OnMessageDelta: func(id, text string) {
			fmt.Print(text)
		},
		OnMessageEnd: func(msg core.AgentMessage) {
			fmt.Println()
			recorder.messages = append(recorder.messages, msg)
		},
		OnVerdict: func(v core.Verdict) {
			if !verdictShown {
				fmt.Printf("\n%s\n", strings.Repeat("═", 60))
				fmt.Println("🏛️  THE VERDICT")
				fmt.Println(strings.Repeat("═", 60))
				verdictShown = true
			}
			if !v.IsStreaming {
				recorder.verdict = &v
			}
		},
	}

	if err := session.Run(ctx, cb); err != nil {
		return err
	}
	if session.Aborted() {
		return nil
	}

	if recorder.verdict != nil {
		fmt.Printf("\n%s\n", recorder.verdict.FullText)
		if recorder.verdict.Winner != "" {
			fmt.Printf("\n🏆 Winner: %s", recorder.verdict.Winner)
			if recorder.verdict.Confidence != nil {
				fmt.Printf(" (%d%% confidence)", *recorder.verdict.Confidence)
			}
			fmt.Println()
		}
	}

	if exportFlag != "" {
		return exportTranscript(optionA, optionB, theme, recorder)
	}
	return nil
}

func exportTranscript(optionA, optionB string, theme core.ThemeKey, recorder *transcriptRecorder) error {
	exporter, err := export.GetExporter(export.Format(exportFlag))
	if err != nil {
		return err
	}

	transcript := &export.Transcript{
		OptionA:   optionA,
		OptionB:   optionB,
		Category:  categoryFlag,
		Theme:     theme,
		Messages:  recorder.messages,
		Verdict:   recorder.verdict,
		CreatedAt: time.Now(),
	}

	path := outputFlag
	if path == "" {
		path = export.GenerateFilename(transcript, exporter.FileExtension())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := exporter.Export(transcript, f); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("\n📄 Exported to %s\n", path)
	return nil
}

// ============================================================================
// HISTORY COMMAND
// ============================================================================

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent comparisons",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := getStore()
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.Recent(cmd.Context(), limitFlag)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No comparisons yet. Start one with: splitdecision run \"A\" \"B\"")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "MATCHUP\tWINNER\tCONFIDENCE\tTHEME\tDATE")
		for _, rec := range records {
			matchup := fmt.Sprintf("%s vs %s", rec.OptionA, rec.OptionB)
			if len(matchup) > 40 {
				matchup = matchup[:37] + "..."
			}
			fmt.Fprintf(w, "%s\t%s\t%d%%\t%s\t%s\n",
				matchup,
				rec.Winner,
				rec.Confidence,
				rec.Theme,
				time.UnixMilli(rec.Timestamp).Format("2006-01-02 15:04"),
			)
		}
		w.Flush()

		return nil
	},
}

// ============================================================================
// THEMES COMMAND
// ============================================================================

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available debate themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tTHEME\tDESCRIPTION")
		for _, theme := range prompt.Themes() {
			fmt.Fprintf(w, "%s\t%s %s\t%s\n", theme.Key, theme.Emoji, theme.Label, theme.Description)
		}
		w.Flush()
		return nil
	},
}
