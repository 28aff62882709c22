package dex

import "github.com/FlagBrew/digidex/internal/models"

// Levels lists the dropdown options: AllLevels, then every distinct level in
// the order it first appears.
func Levels(list []models.Digimon) []string {
	seen := make(map[string]struct{}, 8)
	out := []string{AllLevels}

	for _, d := range list {
		if _, ok := seen[d.Level]; ok {
			continue
		}
		seen[d.Level] = struct{}{}
		out = append(out, d.Level)
	}

	return out
}
