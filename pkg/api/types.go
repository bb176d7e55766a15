package api

import (
	"github.com/ionut-t/sift/pkg/result"
	"github.com/tidwall/gjson"
)

// UploadResult is the backend's answer to an upload.
type UploadResult struct {
	Message string
	Schemas []string
}

// QueryResponse is the generated-artifact bundle returned for a question.
type QueryResponse struct {
	Question    string
	SQL         string
	Python      string
	PySpark     string
	Explanation string
	Warning     string
	Error       string
	Details     string
	Result      result.Rows
}

// Code returns the artifact for a code tab name.
func (r *QueryResponse) Code(tab string) string {
	switch tab {
	case "python":
		return r.Python
	case "pyspark":
		return r.PySpark
	default:
		return r.SQL
	}
}

func parseUploadResult(body []byte) (*UploadResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedResponse
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, ErrMalformedResponse
	}

	res := &UploadResult{
		Message: doc.Get("message").String(),
		Schemas: []string{},
	}

	schemas := doc.Get("schemas")
	if schemas.Exists() && schemas.Type != gjson.Null && !schemas.IsArray() {
		return nil, ErrMalformedResponse
	}

	for _, s := range schemas.Array() {
		res.Schemas = append(res.Schemas, s.String())
	}

	return res, nil
}

func parseQueryResponse(body []byte) (*QueryResponse, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedResponse
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, ErrMalformedResponse
	}

	res := &QueryResponse{
		SQL:         doc.Get("sql").String(),
		Python:      doc.Get("python").String(),
		PySpark:     doc.Get("pyspark").String(),
		Explanation: doc.Get("explanation").String(),
		Warning:     doc.Get("warning").String(),
		Error:       doc.Get("error").String(),
		Details:     doc.Get("details").String(),
	}

	raw := doc.Get("result")

	// the backend reports execution failures as {"error": "..."} in place of rows
	if raw.IsObject() {
		if msg := raw.Get("error").String(); msg != "" {
			if res.Warning != "" {
				res.Warning += "\n"
			}
			res.Warning += msg
		}
		return res, nil
	}

	rows, err := result.Parse(raw)
	if err != nil {
		return nil, ErrMalformedResponse
	}
	res.Result = rows

	return res, nil
}
