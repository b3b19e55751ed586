package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/yourusername/dram-rate-bot/internal/domain/entity"
	"github.com/yourusername/dram-rate-bot/internal/recognizer"
	"github.com/yourusername/dram-rate-bot/internal/responder"
)

// --- Rates Command ---

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the rates of every bank for one currency",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := langFlag(cmd)
		if err != nil {
			return err
		}
		raw, _ := cmd.Flags().GetString("currency")
		cur := entity.Currency(strings.ToLower(raw))
		if cur != entity.CurrencyUSD && cur != entity.CurrencyRUR {
			return fmt.Errorf("unsupported currency %q, want usd or rur", raw)
		}
		cash, _ := cmd.Flags().GetBool("cash")

		a, err := newApp(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}

		best, sheets, err := a.source.GetAllRates(cmd.Context(), lang, cur, !cash)
		if err != nil {
			return err
		}

		printSheets(cmd.OutOrStdout(), best, sheets, cur)
		return nil
	},
}

func printSheets(w io.Writer, best entity.BestRatePair, sheets []entity.BankRateSheet, cur entity.Currency) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "BEST\t%s\t%s\t\n", best.BestBuy, best.BestSell)
	fmt.Fprintln(tw, "BANK\tBUY\tSELL\tUPDATED")
	for _, s := range sheets {
		rate, _ := s.Rate(cur)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, dash(rate.Buy), dash(rate.Sell), s.UpdatedAt)
	}
	tw.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// --- Banks Command ---

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List the bank catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := langFlag(cmd)
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}

		if remote, _ := cmd.Flags().GetBool("remote"); remote {
			names, err := a.source.ListBankNames(cmd.Context(), lang)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), a.catalogs.Describe(a.catalog, lang))
		return nil
	},
}

// --- Convert Command ---

var convertCmd = &cobra.Command{
	Use:   "convert <amount> [dram]",
	Short: "Convert an amount with the rates of one bank",
	Long:  "Convert a USD/RUR amount to AMD, or an AMD amount to USD/RUR when the words 'dram' or 'amd' follow it.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := langFlag(cmd)
		if err != nil {
			return err
		}
		bankID, _ := cmd.Flags().GetString("bank")

		a, err := newApp(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		if _, ok := a.catalog.ByID(entity.BankID(bankID)); !ok {
			return fmt.Errorf("unknown bank %q, see the banks command", bankID)
		}

		msg, ok := recognizer.NumberRecognizer{}.Recognize(strings.Join(args, " "))
		if !ok {
			return fmt.Errorf("no amount in %q", strings.Join(args, " "))
		}

		prefs := entity.UserPreferences{}
		prefs.Set(lang, entity.BankID(bankID))

		reply, err := responder.NewConvertResponder(a.source, a.catalog).
			Respond(cmd.Context(), msg, entity.ChannelWeb, strings.Join(args, " "), prefs)
		if err != nil {
			return err
		}

		for _, m := range reply.Messages {
			fmt.Fprintln(cmd.OutOrStdout(), plainText(m.Text))
		}
		return nil
	},
}

var markup = strings.NewReplacer("**", "", "*", "")

// plainText drops the bold/italic markers of web replies
func plainText(s string) string {
	return markup.Replace(s)
}

func langFlag(cmd *cobra.Command) (entity.Language, error) {
	raw, _ := cmd.Flags().GetString("lang")
	lang, ok := entity.ParseLanguage(raw)
	if !ok {
		return "", fmt.Errorf("unsupported language %q, want hy, en or ru", raw)
	}
	return lang, nil
}

func init() {
	for _, c := range []*cobra.Command{ratesCmd, banksCmd, convertCmd} {
		c.Flags().String("lang", string(entity.LanguageEn), "language: hy, en or ru")
	}

	ratesCmd.Flags().String("currency", string(entity.CurrencyUSD), "currency: usd or rur")
	ratesCmd.Flags().Bool("cash", false, "cash rates instead of non-cash")

	banksCmd.Flags().Bool("remote", false, "list the bank names published by the rate source")

	convertCmd.Flags().String("bank", "acba", "bank id used for the conversion")
}
