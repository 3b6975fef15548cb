package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wgomg/digest/internal/abstractive"
	"github.com/wgomg/digest/internal/comparison"
	"github.com/wgomg/digest/internal/extractive"
	"github.com/wgomg/digest/internal/render"
	"github.com/wgomg/digest/internal/source"
	"github.com/wgomg/digest/internal/utils"
)

var errNoInput = errors.New("no input: use --text, --file, --url or --sample, or pipe text on stdin")

type summarizeFlags struct {
	text          string
	file          string
	url           string
	sample        string
	methods       []string
	models        []string
	sentences     int
	reference     string
	referenceFile string
	maxLength     int
	minLength     int
	json          bool
}

func summarizeCmd(a *app) *cobra.Command {
	var f summarizeFlags

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize a text with several methods side by side",
		Long: "Summarize a text with every requested method and print one card per method.\n" +
			"With a reference summary each candidate is scored with ROUGE and a winner is picked.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSummarize(cmd, &f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.text, "text", "", "Text to summarize")
	flags.StringVarP(&f.file, "file", "f", "", "Read the text from a .txt, .md or .rtf file")
	flags.StringVar(&f.url, "url", "", "Fetch the article at this URL")
	flags.StringVar(&f.sample, "sample", "", "Use a built-in sample article")
	flags.StringSliceVarP(&f.methods, "method", "m", nil, "Extractive method; repeatable (default all)")
	flags.StringSliceVar(&f.models, "abstractive", nil, "Abstractive model (bart, t5); repeatable")
	flags.IntVarP(&f.sentences, "sentences", "n", 0, "Sentences per extractive summary (default SUMMARY_DEFAULT_SENTENCES)")
	flags.StringVar(&f.reference, "reference", "", "Reference summary to score against")
	flags.StringVar(&f.referenceFile, "reference-file", "", "Read the reference summary from a file")
	flags.IntVar(&f.maxLength, "max-length", 0, "Maximum abstractive summary length in tokens")
	flags.IntVar(&f.minLength, "min-length", 0, "Minimum abstractive summary length in tokens")
	flags.BoolVar(&f.json, "json", false, "Print the report as JSON")

	cmd.MarkFlagsMutuallyExclusive("text", "file", "url", "sample")
	cmd.MarkFlagsMutuallyExclusive("reference", "reference-file")

	return cmd
}

func (a *app) runSummarize(cmd *cobra.Command, f *summarizeFlags) error {
	ctx := utils.WithRequestID(cmd.Context(), uuid.NewString())
	reqID := utils.RequestID(ctx)

	text, err := a.readInput(cmd, f)
	if err != nil {
		return err
	}

	reference := f.reference
	if f.referenceFile != "" {
		if reference, err = source.ReadFile(f.referenceFile, a.cfg.Source.MaxFileBytes); err != nil {
			return fmt.Errorf("reading reference: %w", err)
		}
	}

	sentences := f.sentences
	if sentences == 0 {
		sentences = a.cfg.Summary.DefaultSentences
	}
	if sentences > a.cfg.Summary.MaxSentences {
		return fmt.Errorf("sentences must not exceed %d", a.cfg.Summary.MaxSentences)
	}

	req := comparison.Request{
		Text:      text,
		Reference: reference,
		Sentences: sentences,
		Abstractive: abstractive.Options{
			MaxLength: orDefault(f.maxLength, a.cfg.Abstractive.MaxLength),
			MinLength: orDefault(f.minLength, a.cfg.Abstractive.MinLength),
		},
	}
	for _, name := range f.methods {
		method, err := extractive.ParseMethod(name)
		if err != nil {
			return err
		}
		req.Methods = append(req.Methods, method)
	}
	for _, name := range f.models {
		model, err := abstractive.ParseModel(name)
		if err != nil {
			return err
		}
		req.Models = append(req.Models, model)
	}

	engine, err := a.newEngine()
	if err != nil {
		return err
	}

	a.logger.Debug(reqID, "Summarizing %d words: k=%d", utils.CountWords(text), sentences)

	report, err := a.newRunner(engine).Run(ctx, req)
	if err != nil {
		return err
	}

	if f.json {
		return render.JSON(cmd.OutOrStdout(), report)
	}
	return render.NewTerminal(cmd.OutOrStdout()).Report(report)
}

// readInput returns the text named by the input flags, falling back to stdin
// when it is piped.
func (a *app) readInput(cmd *cobra.Command, f *summarizeFlags) (string, error) {
	switch {
	case f.text != "":
		return f.text, nil
	case f.file != "":
		return source.ReadFile(f.file, a.cfg.Source.MaxFileBytes)
	case f.url != "":
		article, err := source.NewFetcher(a.cfg, a.logger).Fetch(cmd.Context(), f.url)
		if err != nil {
			return "", err
		}
		a.logger.Info(nil, "Fetched %q", article.Title)
		return article.Text, nil
	case f.sample != "":
		sample, err := a.samples().Find(f.sample)
		if err != nil {
			return "", err
		}
		return sample.Text, nil
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		return "", errNoInput
	}
	return source.ReadText(in, a.cfg.Summary.MaxInputBytes)
}

func isTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func orDefault(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
