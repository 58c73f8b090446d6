package services

import (
	"strconv"
	"strings"

	"github.com/quillhub/quill/pkg/internal/models"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// PostPage is one slice of an ordered post collection plus the metadata the
// templates need to render pager controls.
type PostPage struct {
	Items      []models.Post `json:"items"`
	Count      int64         `json:"count"`
	Number     int           `json:"number"`
	TotalPages int           `json:"total_pages"`
	Size       int           `json:"size"`
}

func (p PostPage) HasPrev() bool { return p.Number > 1 }
func (p PostPage) HasNext() bool { return p.Number < p.TotalPages }
func (p PostPage) PrevNumber() int {
	return p.Number - 1
}
func (p PostPage) NextNumber() int {
	return p.Number + 1
}

func PageSize() int {
	size := viper.GetInt("paginator.page_size")
	if size <= 0 {
		size = 10
	}
	return size
}

// PlanPage resolves a raw page query parameter against the collection size.
// Missing, malformed or non-positive numbers fall back to the first page;
// numbers past the end clamp to the last page. An empty collection still
// yields a well-formed single empty page.
func PlanPage(count int64, page string, size int) (number, offset, totalPages int) {
	number, err := strconv.Atoi(strings.TrimSpace(page))
	if err != nil || number < 1 {
		number = 1
	}

	totalPages = int((count + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}
	if number > totalPages {
		number = totalPages
	}

	offset = (number - 1) * size
	return
}

// PaginatePost counts the filtered collection, clamps the requested page and
// pulls exactly one page of it in the default newest-first order.
func PaginatePost(tx *gorm.DB, page string) (PostPage, error) {
	size := PageSize()

	countTx := tx
	count, err := CountPost(countTx)
	if err != nil {
		return PostPage{}, err
	}

	number, offset, totalPages := PlanPage(count, page, size)

	items, err := ListPost(tx, size, offset, PostDefaultOrder)
	if err != nil {
		return PostPage{}, err
	}

	return PostPage{
		Items:      items,
		Count:      count,
		Number:     number,
		TotalPages: totalPages,
		Size:       size,
	}, nil
}
