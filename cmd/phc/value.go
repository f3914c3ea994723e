package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/phcformat/phc/pkg/b64"
	"github.com/phcformat/phc/pkg/phc"
)

// ValueCLI validates a single parameter value and reports how it can be
// interpreted.
type ValueCLI struct {
	Text string `arg:"" help:"Parameter value text to inspect."`
	JSON bool   `help:"Output in JSON format" short:"j"`
}

type valueInfo struct {
	Text    string  `json:"text"`
	Length  int     `json:"length"`
	Decimal *uint32 `json:"decimal,omitempty"`
	B64Hex  *string `json:"b64_hex,omitempty"`
}

func (c *ValueCLI) Run(logger *slog.Logger) error {
	v, err := phc.New(c.Text)
	if err != nil {
		return fmt.Errorf("invalid parameter value: %w", err)
	}

	logger.Debug("validated value", "length", v.Len())

	info := inspectValue(v)

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Printf("value:   %q\n", info.Text)
	fmt.Printf("length:  %d\n", info.Length)
	if info.Decimal != nil {
		fmt.Printf("decimal: %d\n", *info.Decimal)
	} else {
		fmt.Printf("decimal: -\n")
	}
	if info.B64Hex != nil {
		fmt.Printf("b64:     %s\n", *info.B64Hex)
	} else {
		fmt.Printf("b64:     -\n")
	}

	return nil
}

// inspectValue computes every interpretation a value admits.
func inspectValue(v phc.Value) valueInfo {
	info := valueInfo{
		Text:   v.String(),
		Length: v.Len(),
	}

	if n, err := v.Decimal(); err == nil {
		info.Decimal = &n
	}

	buf := make([]byte, b64.DecodedLen(v.Len()))
	if raw, err := v.B64Decode(buf); err == nil {
		h := hex.EncodeToString(raw)
		info.B64Hex = &h
	}

	return info
}
