package config

import "sort"

// Presets are named delimiter setups for common file dialects.
var Presets = map[string]*Config{
	"csv":       {Delimiter: ","},
	"tsv":       {Delimiter: "\t"},
	"semicolon": {Delimiter: ";"},
	"pipe":      {Delimiter: "|"},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Delimiter = p.Delimiter
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
