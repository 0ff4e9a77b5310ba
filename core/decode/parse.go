package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errTrailingData reports text left over after the top-level value.
var errTrailingData = errors.New("unexpected data after top-level value")

// parse decodes exactly one JSON value, keeping numbers as json.Number so the
// validator can check integrality.
func parse(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	return v, nil
}

func parseMessage(err error) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("%s (offset %d)", syntaxErr.Error(), syntaxErr.Offset)
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return "unexpected end of JSON input"
	}
	return err.Error()
}
