package internal

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Key        string
	Challenge  string
	EndedAt    string
	UserID     string
	Engagement string
	Currencies string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// StartDebugServer serves a read-only HTML view over the badger
// archive plus live engine counters. Debug surface only, never
// exposed beyond the operator network.
func StartDebugServer(db *badger.DB, port int, endpoint string, mapper RowMapper, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	if mapper == nil {
		mapper = DefaultMapper
	}

	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "session:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}

		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}

// DefaultMapper decodes archive keys of the form
// session:{challenge}:{endedAtNano}:{sessionID}.
func DefaultMapper(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:        key,
		Challenge:  "-",
		EndedAt:    "--:--:--",
		UserID:     "--------",
		Engagement: strconv.Itoa(len(val)) + " bytes",
		Currencies: "-",
	}

	parts := strings.Split(key, ":")
	if len(parts) >= 4 {
		row.Challenge = parts[1]
		if tsNano, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
			row.EndedAt = time.Unix(0, tsNano).UTC().Format("15:04:05")
		}
	}

	var archived struct {
		UserID               string `json:"user_id"`
		TotalEngagement      int64  `json:"total_engagement"`
		StableCurrencyEarned int64  `json:"stable_currency_earned"`
		BonusCurrencyEarned  int64  `json:"bonus_currency_earned"`
	}
	if err := json.Unmarshal(val, &archived); err == nil {
		row.UserID = archived.UserID
		row.Engagement = strconv.FormatInt(archived.TotalEngagement, 10)
		row.Currencies = fmt.Sprintf("stable=%d bonus=%d", archived.StableCurrencyEarned, archived.BonusCurrencyEarned)
	}
	return row
}
