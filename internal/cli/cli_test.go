package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgomg/digest/internal/comparison"
	"github.com/wgomg/digest/internal/extractive"
	"github.com/wgomg/digest/internal/source"
)

const article = "The Federal Reserve kept its benchmark interest rate unchanged on Wednesday. " +
	"Officials said inflation remains elevated and the labor market is still tight. " +
	"Chair Jerome Powell told reporters that further rate increases are possible. " +
	"Stocks rose after the announcement as investors bet the cycle is near its end."

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ABSTRACTIVE_TOKEN", "")
	t.Setenv("SOURCE_SAMPLES_PATH", "")
	t.Setenv("APP_LOG_LEVEL", "error")

	cmd := RootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func decodeReport(t *testing.T, out string) comparison.Report {
	t.Helper()
	var report comparison.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	return report
}

func TestSummarizeCmd(t *testing.T) {
	t.Run("Should summarize a sample with one method", func(t *testing.T) {
		out, err := execute(t, "", "summarize", "--sample", "fed rate decision", "-m", "lsa", "-n", "2", "--json")
		require.NoError(t, err)

		report := decodeReport(t, out)
		require.Len(t, report.Candidates, 1)
		assert.Equal(t, "LSA", report.Candidates[0].Name)
		assert.Len(t, report.Candidates[0].Indices, 2)
		assert.Nil(t, report.Winner)
	})

	t.Run("Should read the text from stdin", func(t *testing.T) {
		out, err := execute(t, article, "summarize", "--sentences", "1")
		require.NoError(t, err)

		for _, name := range []string{"TextRank", "LexRank", "LSA", "TF-IDF", "Final comparison"} {
			assert.Contains(t, out, name)
		}
	})

	t.Run("Should read the text and the reference from files", func(t *testing.T) {
		dir := t.TempDir()
		textPath := filepath.Join(dir, "article.txt")
		refPath := filepath.Join(dir, "reference.md")
		require.NoError(t, os.WriteFile(textPath, []byte(article), 0o600))
		require.NoError(t, os.WriteFile(refPath, []byte("The Federal Reserve kept its benchmark interest rate unchanged."), 0o600))

		out, err := execute(t, "", "summarize", "-f", textPath, "--reference-file", refPath,
			"--method", "text_rank,tfidf", "-n", "1", "--json")
		require.NoError(t, err)

		report := decodeReport(t, out)
		require.Len(t, report.Candidates, 2)
		require.NotNil(t, report.Winner)
		for _, c := range report.Candidates {
			assert.NotNil(t, c.Scores)
		}
	})

	t.Run("Should report abstractive models as unavailable", func(t *testing.T) {
		out, err := execute(t, "", "summarize", "--text", article, "-m", "tfidf", "--abstractive", "bart", "-n", "1", "--json")
		require.NoError(t, err)

		report := decodeReport(t, out)
		require.Len(t, report.Candidates, 2)
		assert.True(t, report.Candidates[1].Failed())
	})

	t.Run("Should fail on empty input", func(t *testing.T) {
		_, err := execute(t, "   ", "summarize")
		assert.ErrorIs(t, err, extractive.ErrEmptyInput)
	})

	t.Run("Should fail on unknown methods", func(t *testing.T) {
		_, err := execute(t, "", "summarize", "--text", article, "-m", "luhn")

		var unsupported *extractive.UnsupportedMethodError
		assert.ErrorAs(t, err, &unsupported)
	})

	t.Run("Should reject several input sources", func(t *testing.T) {
		_, err := execute(t, "", "summarize", "--text", article, "--sample", "Market Volatility")
		assert.Error(t, err)
	})

	t.Run("Should cap the sentence count", func(t *testing.T) {
		_, err := execute(t, "", "summarize", "--text", article, "-n", "51")
		assert.ErrorContains(t, err, "must not exceed")
	})
}

func TestSamplesCmd(t *testing.T) {
	t.Run("Should list the samples", func(t *testing.T) {
		out, err := execute(t, "", "samples", "--json")
		require.NoError(t, err)

		var samples source.Samples
		require.NoError(t, json.Unmarshal([]byte(out), &samples))
		assert.Equal(t, []string{"Fed Rate Decision", "Tech Earnings Report", "Market Volatility"}, samples.Names())
	})

	t.Run("Should print one sample", func(t *testing.T) {
		out, err := execute(t, "", "samples", "tech-earnings-report")
		require.NoError(t, err)
		assert.NotEmpty(t, strings.TrimSpace(out))
	})

	t.Run("Should fail on unknown samples", func(t *testing.T) {
		_, err := execute(t, "", "samples", "crypto")
		assert.ErrorIs(t, err, source.ErrSampleNotFound)
	})
}

func TestMethodsCmd(t *testing.T) {
	out, err := execute(t, "", "methods")
	require.NoError(t, err)

	for _, key := range []string{"graph-degree", "graph-eigenvector", "latent-semantic", "term-weight", "bart", "t5"} {
		assert.Contains(t, out, key)
	}
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	t.Setenv("GRAPH_DAMPING", "1.5")

	_, err := execute(t, "", "methods")
	assert.ErrorContains(t, err, "GRAPH_DAMPING")
}
