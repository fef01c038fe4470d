// pkg/api/shapes_v1.go
package api

// ShapeV1 is the stable JSON/JSONL/YAML schema for one shaped structure.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ShapeV1 struct {
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	Structure string `json:"structure" yaml:"structure"`
	Level5    string `json:"level5" yaml:"level5"`
	Level3    string `json:"level3" yaml:"level3"`
	Level1    string `json:"level1" yaml:"level1"`
	Stems     int    `json:"stems" yaml:"stems"`
	Seq       string `json:"seq,omitempty" yaml:"seq,omitempty"`
	Source    string `json:"source_file,omitempty" yaml:"source_file,omitempty"`
}
