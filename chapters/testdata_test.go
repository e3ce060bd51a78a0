package chapters

import (
	"fmt"

	"autoqpf/models"
)

// menuFields builds a raw menu track the way mediainfo reports one.
func menuFields(entries ...[2]string) []models.Field {
	fields := []models.Field{
		{Key: "track_type", Value: "Menu"},
		{Key: "chapters_pos_begin", Value: "11"},
		{Key: models.MenuSentinelKey, Value: "21"},
	}
	for _, e := range entries {
		fields = append(fields, models.Field{Key: e[0], Value: e[1]})
	}
	return fields
}

// numberedMenu returns n entries labelled "Chapter <first>".."Chapter <first+n-1>", five minutes apart.
func numberedMenu(first, n int) []models.Field {
	entries := make([][2]string, n)
	for i := range entries {
		entries[i] = [2]string{
			fmt.Sprintf("00_%02d_00_000", i*5),
			fmt.Sprintf("Chapter %02d", first+i),
		}
	}
	return menuFields(entries...)
}

func mustEntries(fields []models.Field) []models.ChapterEntry {
	entries, err := ParseMenu(fields)
	if err != nil {
		panic(err)
	}
	return entries
}
