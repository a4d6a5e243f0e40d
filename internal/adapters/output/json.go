package output

import (
	"encoding/json"
	"os"

	"github.com/mprisctl/mprisctl/internal/core"
)

// JSONPrinter prints machine-readable output.
type JSONPrinter struct{}

// Print encodes one value per line.
func (JSONPrinter) Print(v any) error {
	if chunk, ok := v.(core.Chunk); ok {
		v = map[string]string{"output": string(chunk)}
	}
	return json.NewEncoder(os.Stdout).Encode(v)
}
