package entities

// Book is a search result or recommendation
type Book struct {
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
}

// Bestseller is one row of a bestseller page
type Bestseller struct {
	Title        string `json:"title"`
	Author       string `json:"author"`
	Cover        string `json:"cover"`
	Link         string `json:"link"`
	ISBN         string `json:"isbn"`
	Description  string `json:"description"`
	PubDate      string `json:"pubDate"`
	CategoryName string `json:"categoryName"`
	BestRank     int    `json:"bestRank"`
}

// Category is a bestseller filter
type Category struct {
	ID   int
	Name string
}

// Categories lists the bestseller filters in display order. ID 0 is the overall list.
var Categories = []Category{
	{ID: 0, Name: "종합"},
	{ID: 1, Name: "소설/시/희곡"},
	{ID: 55889, Name: "에세이"},
	{ID: 656, Name: "인문학"},
	{ID: 798, Name: "사회과학"},
	{ID: 987, Name: "과학"},
	{ID: 336, Name: "자기계발"},
	{ID: 170, Name: "경제경영"},
	{ID: 74, Name: "역사"},
}

// CategoryName returns the label of a category id
func CategoryName(id int) (string, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}
