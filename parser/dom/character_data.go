package dom

// CharacterData is https://dom.spec.whatwg.org/#characterdata
type CharacterData struct {
	Data   string
	Length int
}

// Text is https://dom.spec.whatwg.org/#text
type Text struct {
	*CharacterData
}

func NewText(data string) *Text {
	return &Text{
		CharacterData: &CharacterData{
			Data:   data,
			Length: len(data),
		}}
}

// Comment is https://dom.spec.whatwg.org/#interface-comment
type Comment struct {
	*CharacterData
}

func NewCommentData(data string) *Comment {
	return &Comment{
		CharacterData: &CharacterData{
			Data:   data,
			Length: len(data),
		},
	}
}
