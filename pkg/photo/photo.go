package photo

import "fmt"

// Photo is a single gallery image. There is no dedicated id field;
// identity for likes and notes is the key derived from the photo's own
// fields, so two photos with identical data, folder, and caption share
// like and note state.
type Photo struct {
	Data    string `json:"data"`
	Folder  string `json:"folder,omitempty"`
	Caption string `json:"caption,omitempty"`
}

func New(data, folder, caption string) Photo {
	return Photo{
		Data:    data,
		Folder:  folder,
		Caption: caption,
	}
}

// Key returns the derived identity string used to key likes and notes.
func (p Photo) Key() string {
	return p.Data + "|" + p.Folder + "|" + p.Caption
}

func (p Photo) Title() string {
	if p.Caption != "" {
		return p.Caption
	}
	return "(untitled)"
}

func (p Photo) String() string {
	if p.Folder == "" {
		return p.Title()
	}
	return fmt.Sprintf("%s [%s]", p.Title(), p.Folder)
}
