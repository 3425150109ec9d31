package webapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-raceresult/model"
)

func TestContestsSave(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/_ev1/api/contests/save", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("oldID"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var contest model.Contest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&contest))
		assert.Equal(t, "Marathon", contest.Name)
		w.Write([]byte("7"))
	})
	api := newTestAPI(t, router)

	id, err := api.Event("ev1").Contests().Save(context.Background(), model.Contest{Name: "Marathon"}, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, id)
}

func TestContestsGet(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/_ev1/api/contests/get", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"ID": 1, "Name": "Marathon", "Length": "42,195"},
			{"ID": 2, "Name": "Half Marathon", "Length": "21.0975"}
		]`))
	})
	api := newTestAPI(t, router)

	contests, err := api.Event("ev1").Contests().Get(context.Background())
	require.NoError(t, err)
	require.Len(t, contests, 2)
	assert.Equal(t, "Marathon", contests[0].Name)
	assert.InDelta(t, 42.195, contests[0].Length.Float64(), 1e-9)
	assert.InDelta(t, 21.0975, contests[1].Length.Float64(), 1e-9)
}

func TestVouchersDelete(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/_ev1/api/vouchers/delete", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/plain", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "1;2;3", string(body))
	})
	api := newTestAPI(t, router)

	require.NoError(t, api.Event("ev1").Vouchers().Delete(context.Background(), []int{1, 2, 3}))
}

func TestChipFileRoundTrip(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/_ev1/api/chipfile/get", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("AAA123;1\r\nBBB456;2\r\nmalformed line\r\n"))
	})
	router.Post("/_ev1/api/chipfile/save", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "AAA123;1\r\nBBB456;2", string(body))
	})
	api := newTestAPI(t, router)
	chipFile := api.Event("ev1").ChipFile()

	entries, err := chipFile.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, model.ChipFileEntry{Transponder: "AAA123", Identification: "1"}, entries[0])

	require.NoError(t, chipFile.Save(context.Background(), entries))
}

func TestParticipantsGetFields(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/_ev1/api/part/getfields", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "15", r.URL.Query().Get("bib"))
		assert.Equal(t, "Firstname,Lastname", r.URL.Query().Get("fields"))
		w.Write([]byte(`{"Firstname": "Ada", "Lastname": "Lovelace"}`))
	})
	api := newTestAPI(t, router)

	fields, err := api.Event("ev1").Participants().GetFields(
		context.Background(),
		ByBib(15),
		[]string{"Firstname", "Lastname"},
	)
	require.NoError(t, err)
	assert.Equal(t, "Ada", fields["Firstname"])
	assert.Equal(t, "Lovelace", fields["Lastname"])
}

func TestSettingsGet(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/_ev1/api/settings/getsettings", func(w http.ResponseWriter, r *http.Request) {
		if name := r.URL.Query().Get("name"); name != "" {
			assert.Equal(t, "EventName", name)
			w.Write([]byte(`{"EventName": "City Run"}`))
			return
		}
		assert.Equal(t, "EventName,EventDate", r.URL.Query().Get("names"))
		w.Write([]byte(`{"EventName": "City Run", "EventDate": "2024-06-15"}`))
	})
	api := newTestAPI(t, router)
	settings := api.Event("ev1").Settings()

	value, err := settings.GetValue(context.Background(), "EventName")
	require.NoError(t, err)
	assert.Equal(t, "City Run", value)

	values, err := settings.Get(context.Background(), "EventName", "EventDate")
	require.NoError(t, err)
	assert.Len(t, values, 2)

	values, err = settings.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestTimesSwap(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/_ev1/api/times/swap", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "11", r.URL.Query().Get("bib1"))
		assert.Equal(t, "22", r.URL.Query().Get("pid2"))
	})
	api := newTestAPI(t, router)

	require.NoError(t, api.Event("ev1").Times().Swap(context.Background(), ByBib(11), ByPID(22)))
}

func TestRawDataCount(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/_ev1/api/rawdata/count", func(w http.ResponseWriter, r *http.Request) {
		var filter model.RawDataFilter
		require.NoError(t, json.Unmarshal([]byte(r.URL.Query().Get("rdFilter")), &filter))
		assert.Equal(t, []string{"Start"}, filter.TimingPoint)
		w.Write([]byte("128"))
	})
	api := newTestAPI(t, router)

	count, err := api.Event("ev1").RawData().Count(
		context.Background(),
		ByFilter(""),
		"",
		&model.RawDataFilter{TimingPoint: []string{"Start"}},
	)
	require.NoError(t, err)
	assert.Equal(t, 128, count)
}

func TestListsCreatePDF(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/_ev1/api/lists/create", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Result List", r.URL.Query().Get("name"))
		assert.Equal(t, "pdf", r.URL.Query().Get("format"))
		assert.Equal(t, "1,2", r.URL.Query().Get("contest"))
		w.Write([]byte("%PDF-1.7"))
	})
	api := newTestAPI(t, router)

	data, err := api.Event("ev1").Lists().CreatePDF(
		context.Background(),
		"Result List",
		CreateOptions{Contests: []int{1, 2}},
	)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(data))
}

func TestTimesAdd(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/_ev1/api/times/add", func(w http.ResponseWriter, r *http.Request) {
		var passings []model.Passing
		require.NoError(t, json.NewDecoder(r.Body).Decode(&passings))
		require.Len(t, passings, 1)
		assert.Equal(t, "AAA123", passings[0].Transponder)
		w.Write([]byte(`[{"Status": 0, "Time": 3661.25, "TimingPoint": "Finish"}]`))
	})
	api := newTestAPI(t, router)

	items, err := api.Event("ev1").Times().Add(
		context.Background(),
		[]model.Passing{{Transponder: "AAA123", Hits: 4}},
		nil, 0, false,
	)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Finish", items[0].TimingPoint)
	assert.InDelta(t, 3661.25, items[0].Time.Float64(), 1e-9)
}
