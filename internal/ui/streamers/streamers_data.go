// Package streamers fetches the viewer boot payload and remote parse results
// from the host.
package streamers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Its-donkey/multistream/internal/ui/layout"
	"github.com/Its-donkey/multistream/internal/ui/model"
	"github.com/Its-donkey/multistream/internal/ui/state"
)

const (
	bootPath  = "/streams.json"
	parsePath = "/api/parse"
)

// ErrParseRejected is returned by ParseRemote when the host could not
// recognise the input.
var ErrParseRejected = errors.New("input rejected by host")

// FetchBoot retrieves the boot payload from the page origin, falling back to
// the built-in roster if the host does not answer. columns is the count the
// page was opened with; zero leaves the choice to the host.
func FetchBoot(ctx context.Context, columns int) (model.BootPayload, error) {
	return FetchBootFrom(ctx, "", columns)
}

// FetchBootFrom retrieves the boot payload from the host at apiBase.
func FetchBootFrom(ctx context.Context, apiBase string, columns int) (model.BootPayload, error) {
	var query url.Values
	if layout.InRange(columns) {
		query = url.Values{"cols": {strconv.Itoa(columns)}}
	}
	body, err := get(ctx, endpoint(apiBase, bootPath, query))
	if err != nil {
		return fallbackBoot(columns), err
	}
	payload, err := decodeBoot(body)
	if err != nil {
		return fallbackBoot(columns), err
	}
	return payload, nil
}

// ColumnsFromSearch reads the cols parameter of a location.search string.
// It returns 0 when the parameter is missing or out of range.
func ColumnsFromSearch(search string) int {
	values, err := url.ParseQuery(strings.TrimPrefix(search, "?"))
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(values.Get("cols")))
	if err != nil || !layout.InRange(n) {
		return 0
	}
	return n
}

// ParseRemote asks the host to parse input.
func ParseRemote(ctx context.Context, apiBase, input string) (model.ChannelRef, error) {
	target := endpoint(apiBase, parsePath, url.Values{"input": {input}})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return model.ChannelRef{}, err
	}
	resp, err := newClient().Do(req)
	if err != nil {
		return model.ChannelRef{}, fmt.Errorf("parse request: %w", err)
	}
	defer resp.Body.Close()

	var parsed model.ParseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return model.ChannelRef{}, fmt.Errorf("decode parse response: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return model.ChannelRef{}, fmt.Errorf("%w: %s", ErrParseRejected, parsed.Error)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return model.ChannelRef{}, fmt.Errorf("parse %q failed: %s", input, resp.Status)
	}
	return model.ChannelRef{Platform: parsed.Platform, Channel: parsed.Channel}, nil
}

func newClient() *http.Client {
	return &http.Client{Timeout: 8 * time.Second}
}

func endpoint(apiBase, path string, query url.Values) string {
	base := strings.TrimSuffix(strings.TrimSpace(apiBase), "/")
	target := base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

func get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := newClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s failed: %s", target, resp.Status)
	}
	return body, nil
}

func decodeBoot(body []byte) (model.BootPayload, error) {
	var payload model.BootPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return model.BootPayload{}, fmt.Errorf("decode boot payload: %w", err)
	}
	if payload.Streams == nil {
		return model.BootPayload{}, fmt.Errorf("unexpected response shape")
	}
	if !layout.InRange(payload.Columns) {
		payload.Columns = layout.DefaultColumns
	}
	return payload, nil
}

// fallbackBoot seeds the built-in roster locally.
func fallbackBoot(columns int) model.BootPayload {
	if !layout.InRange(columns) {
		columns = layout.DefaultColumns
	}
	registry := state.NewRegistry()
	_ = registry.Seed(model.DefaultRoster)
	return model.BootPayload{
		Streams: registry.Snapshot(),
		Columns: columns,
		Parents: append([]string(nil), model.DefaultParents...),
	}
}
