package cli

// WalkResult is sent for each item that's walked
//
// For command `walk`
type WalkResult struct {
	Type string `json:"type"`
	Path string `json:"path,omitempty"`
	Size int64  `json:"size,omitempty"`
}

// A BuildResult is sent in json mode for each root the build
// command turns into a JSON document
//
// For command `build`
type BuildResult struct {
	Type     string `json:"type"`
	Dir      string `json:"dir"`
	OutPath  string `json:"outPath"`
	NumFiles int    `json:"numFiles"`
	NumDirs  int    `json:"numDirs"`
}
