package entities

// ModelSource is the marketplace an external 3D model listing comes from.

type ModelSource string

const (
	ModelSourceThingiverse   ModelSource = "Thingiverse"
	ModelSourceCults3D       ModelSource = "Cults3D"
	ModelSourcePrintables    ModelSource = "Printables"
	ModelSourceMyMiniFactory ModelSource = "MyMiniFactory"
)

// ParseModelSource accepts the known sources only.
func ParseModelSource(v string) (ModelSource, bool) {
	switch s := ModelSource(v); s {
	case ModelSourceThingiverse, ModelSourceCults3D, ModelSourcePrintables, ModelSourceMyMiniFactory:
		return s, true
	}
	return "", false
}

// ExternalModel is a search result pointing at a third-party listing.
// Not persisted.
type ExternalModel struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Source   ModelSource `json:"source"`
	ImageURL string      `json:"image_url"`
	Author   string      `json:"author"`
	Link     string      `json:"link"`
	IsFree   bool        `json:"is_free"`
}
