// Command nldate parses natural-language date expressions from the
// command line.
//
//	nldate parse -l fr "mardi de la semaine 4" --ref 2024-01-01
//	nldate scan -l en -l de --json "meet wednesday or übermorgen"
//	nldate locales
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	nldate "github.com/olivr70/nldates-obsidian-sub000"
	"github.com/olivr70/nldates-obsidian-sub000/locale"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
	With().Timestamp().Logger()

var registry = nldate.NewRegistry()

var (
	flagLocales []string
	flagRef     string
	flagForward bool
	flagJSON    bool
)

func main() {
	root := &cobra.Command{
		Use:           "nldate",
		Short:         "natural-language date parsing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringArrayVarP(&flagLocales, "locale", "l", []string{"en"},
		"locale tag, repeatable")
	root.PersistentFlags().StringVar(&flagRef, "ref", "",
		"reference date (2006-01-02 or RFC 3339), default now")
	root.PersistentFlags().BoolVar(&flagForward, "forward", false,
		"bias ambiguous dates toward the future")
	root.PersistentFlags().BoolVar(&flagJSON, "json", false,
		"emit JSON")
	root.AddCommand(parseCmd(), scanCmd(), localesCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

func refDate() (time.Time, error) {
	if flagRef == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse("2006-01-02", flagRef); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, flagRef)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid --ref %q", flagRef)
	}
	return t, nil
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [text]",
		Short: "resolve text to a single date",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ref, err := refDate()
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			p := registry.ParserFor(flagLocales[0])
			log.Debug().Str("locale", p.Locale()).Str("text", text).Msg("parse")

			t, ok := p.Moment(text, ref, nldate.Options{ForwardDate: flagForward})
			if !ok {
				return errors.Errorf("no date recognized in %q", text)
			}
			if flagJSON {
				return emit(map[string]any{
					"locale": p.Locale(),
					"time":   t.Format(time.RFC3339),
				})
			}
			fmt.Println(t.Format(time.RFC3339))
			return nil
		},
	}
}

func scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [text]",
		Short: "list every date expression found, across locales",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ref, err := refDate()
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			results := registry.ParseAllWithLocales(text, ref,
				nldate.Options{ForwardDate: flagForward}, flagLocales...)
			log.Debug().Int("results", len(results)).Msg("scan")

			if flagJSON {
				type item struct {
					Index  int    `json:"index"`
					Text   string `json:"text"`
					Locale string `json:"locale"`
					Time   string `json:"time"`
				}
				items := make([]item, 0, len(results))
				for _, res := range results {
					items = append(items, item{
						Index:  res.Index,
						Text:   res.Text,
						Locale: res.Locale,
						Time:   res.Time(ref).Format(time.RFC3339),
					})
				}
				return emit(items)
			}
			for _, res := range results {
				fmt.Printf("%4d  %-10s %-25s %s\n",
					res.Index, res.Locale, res.Text, res.Time(ref).Format(time.RFC3339))
			}
			return nil
		},
	}
}

func localesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "list the supported locales",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			tags := registry.Locales()
			if flagJSON {
				return emit(tags)
			}
			for _, tag := range tags {
				fmt.Printf("%-8s %s\n", tag, locale.DisplayName(tag))
			}
			return nil
		},
	}
}

func emit(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
