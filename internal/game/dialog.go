package game

import (
	"github.com/ncruces/zenity"
)

var errCanceled = zenity.ErrCanceled

func selectConfigFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Open Effect Config"),
		zenity.FileFilters{{
			Name:     "YAML",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
}
