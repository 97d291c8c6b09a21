package service

import (
	"net/http"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// Acceptance runs the documents API scenarios against apiRequest. Every
// alternative starts from an empty, open store.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Create document", func(a *biff.A) {
		resp := apiRequest("POST", "/documents").
			WithBodyJson(JSON{
				"id":      "1",
				"key":     "A",
				"content": "first",
			}).Do()
		Save(resp, "Create document", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"id":      "1",
			"key":     "A",
			"content": "first",
		})

		a.Alternative("Retrieve document", func(a *biff.A) {
			resp := apiRequest("GET", "/documents/1").Do()
			Save(resp, "Retrieve document", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyJsonMap()["content"], "first")
		})

		a.Alternative("Retrieve missing document", func(a *biff.A) {
			resp := apiRequest("GET", "/documents/404").Do()
			Save(resp, "Retrieve document - not found", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("Update document", func(a *biff.A) {
			resp := apiRequest("PUT", "/documents/1").
				WithBodyJson(JSON{
					"key":     "B",
					"content": "replaced",
				}).Do()
			Save(resp, "Update document", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"id":      "1",
				"key":     "B",
				"content": "replaced",
			})
		})

		a.Alternative("Update missing document", func(a *biff.A) {
			resp := apiRequest("PUT", "/documents/2").
				WithBodyJson(JSON{
					"key": "B",
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)

			a.Alternative("Count is untouched", func(a *biff.A) {
				resp := apiRequest("GET", "/documents:count").Do()
				biff.AssertEqualJson(resp.BodyJson(), JSON{"count": 1})
			})
		})

		a.Alternative("Patch document", func(a *biff.A) {
			resp := apiRequest("PATCH", "/documents/1").
				WithBodyJson(JSON{
					"content": "patched",
				}).Do()
			Save(resp, "Patch document", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"id":      "1",
				"key":     "A",
				"content": "patched",
			})
		})

		a.Alternative("Patch document with a wrong type", func(a *biff.A) {
			resp := apiRequest("PATCH", "/documents/1").
				WithBodyJson(JSON{
					"key":     "Z",
					"content": 5,
				}).Do()
			Save(resp, "Patch document - invalid", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)

			a.Alternative("Document is untouched", func(a *biff.A) {
				resp := apiRequest("GET", "/documents/1").Do()
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"id":      "1",
					"key":     "A",
					"content": "first",
				})
			})
		})

		a.Alternative("Patch missing document", func(a *biff.A) {
			resp := apiRequest("PATCH", "/documents/2").
				WithBodyJson(JSON{
					"content": "patched",
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("Delete document", func(a *biff.A) {
			resp := apiRequest("DELETE", "/documents/1").Do()
			Save(resp, "Delete document", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyJsonMap()["id"], "1")

			a.Alternative("Delete again", func(a *biff.A) {
				resp := apiRequest("DELETE", "/documents/1").Do()
				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})
		})

		a.Alternative("Random document", func(a *biff.A) {
			resp := apiRequest("GET", "/documents:random").Do()
			Save(resp, "Random document", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyJsonMap()["id"], "1")
		})
	})

	a.Alternative("Create document without id", func(a *biff.A) {
		resp := apiRequest("POST", "/documents").
			WithBodyJson(JSON{
				"key": "A",
			}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		id, _ := resp.BodyJsonMap()["id"].(string)
		biff.AssertEqual(len(id), 32)
	})

	a.Alternative("Set document", func(a *biff.A) {
		resp := apiRequest("POST", "/documents/7:set").
			WithBodyJson(JSON{
				"key":     "A",
				"content": "set",
			}).Do()
		Save(resp, "Set document", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"id":      "7",
			"key":     "A",
			"content": "set",
		})

		a.Alternative("Set again replaces", func(a *biff.A) {
			apiRequest("POST", "/documents/7:set").
				WithBodyJson(JSON{
					"key":     "B",
					"content": "again",
				}).Do()

			resp := apiRequest("GET", "/documents:count").Do()
			biff.AssertEqualJson(resp.BodyJson(), JSON{"count": 1})
		})
	})

	a.Alternative("Random on empty", func(a *biff.A) {
		resp := apiRequest("GET", "/documents:random").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})

	a.Alternative("Several documents", func(a *biff.A) {
		for _, d := range []JSON{
			{"id": "1", "key": "A", "content": "c"},
			{"id": "2", "key": "B", "content": "b"},
			{"id": "3", "key": "A", "content": "a"},
			{"id": "4", "key": "A", "content": "d"},
		} {
			resp := apiRequest("POST", "/documents").WithBodyJson(d).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		}

		a.Alternative("List documents", func(a *biff.A) {
			resp := apiRequest("GET", "/documents").Do()
			Save(resp, "List documents", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			data := resp.BodyJsonMap()["data"].([]interface{})
			biff.AssertEqual(len(data), 4)
			_, hasTotal := resp.BodyJsonMap()["total"]
			biff.AssertFalse(hasTotal)
		})

		a.Alternative("List by key with paging and total", func(a *biff.A) {
			resp := apiRequest("GET", "/documents").
				WithQuery("key", "A").
				WithQuery("skip", "1").
				WithQuery("take", "1").
				WithQuery("total", "true").
				Do()
			Save(resp, "List documents - filter and paging", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"data": []JSON{
					{"id": "3", "key": "A", "content": "a"},
				},
				"total": 3,
			})
		})

		a.Alternative("List sorted descending", func(a *biff.A) {
			resp := apiRequest("GET", "/documents").
				WithQuery("sort", "-content").
				Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			data := resp.BodyJsonMap()["data"].([]interface{})
			biff.AssertEqual(data[0].(map[string]interface{})["id"], "4")
			biff.AssertEqual(data[3].(map[string]interface{})["id"], "3")
		})

		a.Alternative("Count by key", func(a *biff.A) {
			resp := apiRequest("GET", "/documents:count").
				WithQuery("key", "A").
				Do()
			Save(resp, "Count documents", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{"count": 3})
		})

		a.Alternative("Delete by ids", func(a *biff.A) {
			resp := apiRequest("POST", "/documents:deleteByIds").
				WithBodyJson(JSON{
					"ids": []string{"1", "2", "404"},
				}).Do()
			Save(resp, "Delete documents by ids", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			resp = apiRequest("GET", "/documents:count").Do()
			biff.AssertEqualJson(resp.BodyJson(), JSON{"count": 2})
		})

		a.Alternative("Delete by filter", func(a *biff.A) {
			resp := apiRequest("POST", "/documents:deleteByFilter").
				WithBodyJson(JSON{
					"filter": JSON{"key": "A"},
				}).Do()
			Save(resp, "Delete documents by filter", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			resp = apiRequest("GET", "/documents").Do()
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"data": []JSON{
					{"id": "2", "key": "B", "content": "b"},
				},
			})
		})

		a.Alternative("Clear", func(a *biff.A) {
			resp := apiRequest("POST", "/documents:clear").Do()
			Save(resp, "Clear documents", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			resp = apiRequest("GET", "/documents:count").Do()
			biff.AssertEqualJson(resp.BodyJson(), JSON{"count": 0})
		})
	})
}
