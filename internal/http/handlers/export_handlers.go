package handlers

import (
	"encoding/csv"
	"log"
	"net/http"
	"strconv"
)

// ExportItemsHandler godoc
// @Summary Download the full inventory as a CSV file
// @Tags items
// @Produce text/csv
// @Success 200 {string} string "CSV payload"
// @Router /items/export [get]
func ExportItemsHandler(w http.ResponseWriter, r *http.Request) {
	s := snap.Current()

	categoryNames := make(map[int]string, len(s.Categories))
	for _, c := range s.Categories {
		categoryNames[c.ID] = c.Name
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="inventaris.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Nama", "Deskripsi", "Kategori", "Jumlah", "TanggalBeli"})
	for _, item := range s.Items {
		_ = cw.Write([]string{
			item.Name,
			item.Description,
			categoryNames[item.CategoryID],
			strconv.Itoa(item.Quantity),
			item.PurchaseDate,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("failed to write CSV export: %v", err)
	}
}
