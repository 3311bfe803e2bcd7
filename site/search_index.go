package site

import "encoding/json"

const searchIndexVersion = 1

var (
	searchIndexFields    = []string{"title", "description", "image", "fileSize", "downloadLink", "path"}
	emptySearchIndexJSON = json.RawMessage(`{"v":1,"c":0,"f":["title","description","image","fileSize","downloadLink","path"],"d":[],"t":[]}`)
)

// buildSearchIndex serializes the catalog in display order. Rows in "d"
// follow the field order in "f"; "t" holds each row's tags.
func buildSearchIndex(pages []entryPage) (json.RawMessage, error) {
	if len(pages) == 0 {
		return append(json.RawMessage(nil), emptySearchIndexJSON...), nil
	}

	docs := make([][]string, 0, len(pages))
	tags := make([][]string, 0, len(pages))
	for _, pg := range pages {
		e := pg.Entry
		docs = append(docs, []string{e.Title, e.Description, e.Image, e.FileSize, e.DownloadLink, pg.OutputPath})
		entryTags := e.Tags
		if entryTags == nil {
			entryTags = []string{}
		}
		tags = append(tags, entryTags)
	}

	payload := struct {
		Version  int        `json:"v"`
		DocCount int        `json:"c"`
		Fields   []string   `json:"f"`
		Docs     [][]string `json:"d"`
		Tags     [][]string `json:"t"`
	}{
		Version:  searchIndexVersion,
		DocCount: len(pages),
		Fields:   append([]string(nil), searchIndexFields...),
		Docs:     docs,
		Tags:     tags,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}
