// Package report emits a human-readable digest of a conditional frequency
// table: per-condition summary statistics plus the aligned tabulation,
// as markdown or rendered HTML.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"freqtab/domain/cfd"
	"freqtab/domain/freq"
	"freqtab/internal/tabulate"
)

// Markdown renders a markdown digest of c under the given title: one
// summary line per condition (observation total, vocabulary size, top
// sample, entropy) followed by the tabulation in a fenced block.
func Markdown(title string, c *cfd.CFD, sel tabulate.Selection) (string, error) {
	if err := sel.Validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	conditions := sel.Conditions
	if conditions == nil {
		conditions = c.Conditions()
	}

	b.WriteString("| condition | total | distinct | top sample | entropy |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, cond := range conditions {
		t, err := c.Table(cond)
		if err != nil {
			return "", err
		}
		s, err := freq.Summarize(t)
		if err != nil {
			return "", err
		}
		top := "-"
		if s.MaxCount > 0 {
			top = fmt.Sprintf("%s (%d)", s.MaxSample, s.MaxCount)
		}
		fmt.Fprintf(&b, "| %s | %d | %d | %s | %.3f |\n",
			cond, s.Total, s.Distinct, top, s.Entropy)
	}

	b.WriteString("\n```\n")
	if err := tabulate.Render(&b, c, sel); err != nil {
		return "", err
	}
	b.WriteString("```\n")

	return b.String(), nil
}

// HTML renders the same digest as a standalone HTML fragment.
func HTML(title string, c *cfd.CFD, sel tabulate.Selection) ([]byte, error) {
	md, err := Markdown(title, c, sel)
	if err != nil {
		return nil, err
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, r), nil
}
