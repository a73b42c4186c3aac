package settings

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/viper"
)

func ConfigShow(w io.Writer) {
	fmt.Fprintf(w,
		"%-30s %-40s %-20s %-20s %s\n",
		"JSON KEY",
		"ENV VAR",
		"CURRENT",
		"DEFAULT",
		"DESCRIPTION",
	)

	for _, c := range Registry {
		current := viper.Get(c.Key)
		if c.Key == GatePassword || c.Key == DBSettingsPassword {
			current = mask(current)
		}
		fmt.Fprintf(w,
			"%-30s %-40s %-20v %-20v %s\n",
			c.Key,
			EnvVar(c.Key),
			current,
			c.Default,
			c.Description,
		)
	}
}

func mask(value any) string {
	if s, ok := value.(string); ok && s != "" {
		return "********"
	}
	return ""
}

func ConfigDump(w io.Writer) error {
	out, err := json.MarshalIndent(viper.AllSettings(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(out))
	return nil
}

func ConfigEnv(w io.Writer) {
	fmt.Fprintf(w, "%-40s %s\n", "ENV VAR", "JSON KEY")

	for _, c := range Registry {
		fmt.Fprintf(w, "%-40s %s\n", EnvVar(c.Key), c.Key)
	}
}

func ConfigGet(w io.Writer, key string) error {
	for _, c := range Registry {
		if c.Key == key {
			fmt.Fprintln(w, viper.Get(key))
			return nil
		}
	}
	return fmt.Errorf("unknown config key: %s", key)
}

// ConfigInit prints a settings.json holding every registry default.
func ConfigInit(w io.Writer) error {
	out := map[string]any{}

	for _, c := range Registry {
		out[c.Key] = c.Default
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(b))
	return nil
}
