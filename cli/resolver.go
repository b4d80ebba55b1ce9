package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/lox/log"
)

// resolve returns a [kong.ConfigurationLoader] that reads a YAML
// configuration file.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config.yaml")
//
// The file is a single mapping from flag name to value:
//   - Flag names with hyphens (e.g., "log-level") may use underscores
//     (e.g., "log_level")
//   - Sequences set repeatable flags such as source
//   - Mappings set map flags such as define
//   - Numbers may be written bare; they are passed to kong as text
//
// Example config file:
//
//	log_level: debug
//	log_format: text
//	log_pretty: false
//	define:
//	  answer: "6 * 7"
//
// Command-line flags override config file values. A file that cannot be
// decoded is logged and otherwise ignored.
func resolve(ctx context.Context) func(r io.Reader) (kong.Resolver, error) {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		var raw map[string]any

		if err := yaml.UnmarshalContext(ctx, data, &raw); err != nil {
			log.WarnContext(ctx, "ignoring configuration file",
				slog.String("error", err.Error()),
			)

			return config{}, nil
		}

		out := make(config, len(raw))
		for key, val := range raw {
			out[key] = flagText(val)
		}

		return out, nil
	}
}

// config implements [kong.Resolver] for YAML configuration files.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but YAML keys are commonly
	// written with underscores. Try both forms.
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}

// flagText converts decoded YAML scalars into the forms kong decodes:
// numbers become strings, and nested sequences and mappings are converted
// element by element.
func flagText(v any) any {
	switch v := v.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)

	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = flagText(e)
		}

		return out

	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = flagText(e)
		}

		return out

	case map[any]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[fmt.Sprint(k)] = flagText(e)
		}

		return out

	default:
		return v
	}
}
