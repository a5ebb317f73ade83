package dom

// DocumentType is https://dom.spec.whatwg.org/#documenttype
type DocumentType struct {
	Name, PublicID, SystemID string
}
