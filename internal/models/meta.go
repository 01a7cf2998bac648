package models

// Meta carries the server assigned timestamps (epoch millis) every
// transfer object has. Embed it in resource structs.
type Meta struct {
	CreateTime int64 `json:"createTime"`
	UpdateTime int64 `json:"updateTime"`
}

func (m Meta) Created() int64 { return m.CreateTime }
func (m Meta) Updated() int64 { return m.UpdateTime }

// TransferObject is satisfied by every resource item via Meta.
type TransferObject interface {
	Created() int64
	Updated() int64
}
