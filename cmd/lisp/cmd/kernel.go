package cmd

import (
	"fmt"
	"os"

	"github.com/xinglu/js-lisp/pkg/lisp"
)

func newKernel() (*lisp.Kernel, error) {
	if hostProfile == "" {
		return lisp.New()
	}
	doc, err := os.ReadFile(hostProfile)
	if err != nil {
		return nil, fmt.Errorf("reading host profile %s: %w", hostProfile, err)
	}
	k, err := lisp.New(lisp.WithHostProfile(doc))
	if err != nil {
		return nil, fmt.Errorf("loading host profile %s: %w", hostProfile, err)
	}
	return k, nil
}

func readSource(evalExpr string, args []string) (string, string, error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}
