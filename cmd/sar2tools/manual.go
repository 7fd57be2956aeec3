package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sar2tools/internal/admin"
	"sar2tools/internal/browse"
	"sar2tools/internal/logging"
	"sar2tools/internal/manual"
)

var (
	manualSource string
	manualRaw    string
	renderOut    string
	pdfOut       string
	manualTitle  string
	manualAddr   string
	manualPrefs  string
	pdfFiltered  bool
)

var manualCmd = &cobra.Command{
	Use:   "manual",
	Short: "Render and browse the parameter manual",
	Long:  "manual turns the tag-delimited parameter source into HTML, PDF, a JSON index or an interactive browser.",
}

func loadDocument() (*manual.Document, error) {
	switch {
	case manualRaw != "":
		return manual.Open(manualRaw, true)
	case manualSource != "":
		return manual.Open(manualSource, false)
	}
	return manual.Embedded()
}

// openOut returns STDOUT or a created file, and its closer.
func openOut(path string) (*os.File, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

func preferenceStore() (manual.Store, error) {
	path := manualPrefs
	if path == "" {
		p, err := manual.DefaultPreferencesPath()
		if err != nil {
			return manual.MemoryStore{}, nil
		}
		path = p
	}
	return manual.NewFileStore(path)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the manual as a single HTML page",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}
		out, closeOut, err := openOut(renderOut)
		if err != nil {
			return err
		}
		if err := doc.WriteHTML(out, manual.PageOptions{Title: manualTitle, Prefs: manual.DefaultPreferences()}); err != nil {
			closeOut()
			return err
		}
		st := doc.Stats()
		logging.FromContext(cmd.Context()).Info("manual rendered", "component", "manual", "records", st.Records, "errors", st.Errors)
		return closeOut()
	},
}

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Export the manual as PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}
		opts := manual.PDFOptions{Title: manualTitle}
		if pdfFiltered {
			store, err := preferenceStore()
			if err != nil {
				return err
			}
			p := manual.LoadPreferences(store)
			opts.Prefs = &p
		}
		out, closeOut, err := openOut(pdfOut)
		if err != nil {
			return err
		}
		if err := doc.WritePDF(out, opts); err != nil {
			closeOut()
			return err
		}
		return closeOut()
	},
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Print the navigation index as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(doc.Index)
	},
}

var errDataErrors = errors.New("manual source has data errors")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report parse statistics and dangling cross-references",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		st := doc.Stats()
		fmt.Fprintf(out, "records:       %d\n", st.Records)
		fmt.Fprintf(out, "sections:      %d\n", st.Sections)
		fmt.Fprintf(out, "index entries: %d\n", st.Entries)
		fmt.Fprintf(out, "unknown tags:  %d\n", st.Errors)
		fmt.Fprintf(out, "missing names: %d\n", st.MissingNames)
		fmt.Fprintf(out, "unterminated:  %d\n", st.Unterminated)
		for _, r := range doc.Records {
			if r.Unterminated {
				fmt.Fprintf(out, "warning: record %q has no end marker\n", r.Anchor())
			}
		}
		for _, d := range manual.DanglingRefs(doc.Records) {
			fmt.Fprintf(out, "warning: %s refers to unknown %s\n", d.Record, d.Target)
		}
		if st.Errors > 0 || st.MissingNames > 0 {
			return errDataErrors
		}
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the manual over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		return admin.NewServer(doc, logging.FromContext(ctx)).Start(ctx, manualAddr)
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the manual in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}
		store, err := preferenceStore()
		if err != nil {
			return err
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return browse.WriteList(cmd.OutOrStdout(), doc, manual.LoadPreferences(store))
		}
		return browse.Run(cmd.Context(), doc, store)
	},
}

func init() {
	manualCmd.PersistentFlags().StringVar(&manualSource, "source", "", "Manual source in authoring format (line continuations)")
	manualCmd.PersistentFlags().StringVar(&manualRaw, "raw", "", "Manual source as a flat delimited string")
	manualCmd.MarkFlagsMutuallyExclusive("source", "raw")

	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (default STDOUT)")
	renderCmd.Flags().StringVar(&manualTitle, "title", "", "Page title")
	pdfCmd.Flags().StringVarP(&pdfOut, "out", "o", "manual.pdf", "Output file")
	pdfCmd.Flags().StringVar(&manualTitle, "title", "", "Document title")
	pdfCmd.Flags().BoolVar(&pdfFiltered, "filtered", false, "Only export records visible under the saved preferences")
	pdfCmd.Flags().StringVar(&manualPrefs, "prefs", "", "Preferences file (default under the user config dir)")
	serveCmd.Flags().StringVar(&manualAddr, "addr", ":8080", "Listen address")
	browseCmd.Flags().StringVar(&manualPrefs, "prefs", "", "Preferences file (default under the user config dir)")

	manualCmd.AddCommand(renderCmd, pdfCmd, indexCmd, checkCmd, serveCmd, browseCmd)
}
