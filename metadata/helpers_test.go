// SPDX-License-Identifier: MIT

package metadata_test

import "github.com/katalvlaran/taxasum/metadata"

var heroes = []string{"A_Stark", "N_Romanov", "Z.Washburne", "B_Allen", "F_Smythe", "J_COBB", "C_Xavier", "S_Summers"}

// heroMeta returns a fresh copy of the superhero mapping fixture.
func heroMeta() metadata.Metadata {
	row := func(sex, verse, age, series string) map[string]string {
		return map[string]string{"SEX": sex, "VERSE": verse, "AGE": age, "SERIES": series}
	}

	return metadata.Metadata{
		"A_Stark":     row("male", "Marvel", "40", "Avengers"),
		"N_Romanov":   row("female", "Marvel", "35", "Avengers"),
		"Z.Washburne": row("female", "Wheedon", "38", "Firefly"),
		"B_Allen":     row("male", "DC", "19", "Arrow"),
		"F_Smythe":    row("female", "DC", "22", "Arrow"),
		"J_COBB":      row("male", "Wheedon", "30", "Firefly"),
		"C_Xavier":    row("male", "Marvel", "60", "X-Men"),
		"S_Summers":   row("male", "Marvel", "15", "X-Men"),
	}
}
