package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitWriteJSONWithStatus(t *testing.T) {
	Convey("Data written as json with supplied status", t, func() {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		WriteJSONWithStatus(w, req, NewMessageResponse("Your card was declined."), http.StatusPaymentRequired)

		So(w.Code, ShouldEqual, http.StatusPaymentRequired)
		So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
		So(w.Body.String(), ShouldEqual, `{"message":"Your card was declined."}`+"\n")
	})
}
