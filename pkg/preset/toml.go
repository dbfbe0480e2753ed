package preset

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type tomlPreset struct {
	Name       string     `toml:"name"`
	Rows       [][]string `toml:"rows"`
	RowWeights []int      `toml:"row_weights"`
}

type tomlPresetFile struct {
	Presets []tomlPreset `toml:"preset"`
}

// LoadFile registers every [[preset]] table in the TOML file. A
// missing file is not an error so user preset files stay optional.
func LoadFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading presets: %w", err)
	}
	return loadTOML(data)
}

func loadTOML(data []byte) (int, error) {
	var file tomlPresetFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("parsing presets: %w", err)
	}
	loaded := 0
	for _, tp := range file.Presets {
		p := Preset{Name: tp.Name, Rows: tp.Rows, RowWeights: tp.RowWeights}
		if err := Register(p); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}
