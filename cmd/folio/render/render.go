package render

type Renderer interface {
	RenderGallery(view GalleryView) string
	RenderDetail(view DetailView) string
}

type Chip struct {
	Label string
	Color string
}

type Card struct {
	ID           string
	Title        string
	Summary      string
	Image        string
	Technologies []string
	Roles        []Chip
	Pinned       bool
	Locked       bool
}

type GalleryView struct {
	Heading string
	Filters []string
	Shown   int
	Total   int
	Cards   []Card
}

func (v GalleryView) IsEmpty() bool {
	return len(v.Cards) == 0
}

type DetailView struct {
	Card
	Link   string
	Body   string
	Notice string
}
