package tracker

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type restClient struct {
	cfg         Config
	httpClient  *http.Client
	lastRequest time.Time
	requestMu   sync.Mutex

	// Session cache. Only the roster goes here: the ticket list must be
	// a fresh snapshot every poll cycle, the roster changes rarely.
	cache   map[string]*cacheEntry
	cacheMu sync.RWMutex
}

type cacheEntry struct {
	Value       interface{}
	Expiration  time.Time
	AccessCount int
	OriginalTTL time.Duration
}

func newRESTClient(cfg Config) Client {
	if cfg.RequestDelay == 0 {
		cfg.RequestDelay = 2 * time.Second
	}
	return &restClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: make(map[string]*cacheEntry),
	}
}

func (c *restClient) getFromCache(key string) (interface{}, bool) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	entry, ok := c.cache[key]
	if !ok {
		log.Debug().Str("key", key).Msg("Cache miss")
		return nil, false
	}
	log.Debug().Str("key", key).Msg("Cache hit")

	if time.Now().After(entry.Expiration) {
		delete(c.cache, key)
		return nil, false
	}

	// Sliding window extension
	if entry.AccessCount < 6 {
		entry.Expiration = time.Now().Add(entry.OriginalTTL)
		entry.AccessCount++
		log.Trace().Str("key", key).Int("count", entry.AccessCount).Msg("Extended cache TTL")
	}

	return entry.Value, true
}

func (c *restClient) addToCache(key string, value interface{}, ttl time.Duration) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	c.cache[key] = &cacheEntry{
		Value:       value,
		Expiration:  time.Now().Add(ttl),
		OriginalTTL: ttl,
		AccessCount: 1,
	}
	log.Debug().Str("key", key).Dur("ttl", ttl).Msg("Added to cache")
}

func (c *restClient) throttle() {
	c.requestMu.Lock()
	defer c.requestMu.Unlock()

	elapsed := time.Since(c.lastRequest)
	if elapsed < c.cfg.RequestDelay {
		wait := c.cfg.RequestDelay - elapsed
		log.Debug().Dur("wait", wait).Msg("Throttling tracker request")
		time.Sleep(wait)
	}
	c.lastRequest = time.Now()
}

func (c *restClient) authenticateRequest(req *http.Request) {
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.cfg.Token))
	}
	req.Header.Set("Accept", "application/json")
}

func (c *restClient) ListTickets(statuses []Status) ([]Ticket, error) {
	c.throttle()

	params := url.Values{}
	if len(statuses) > 0 {
		names := make([]string, len(statuses))
		for i, s := range statuses {
			names[i] = string(s)
		}
		params.Set("status", strings.Join(names, ","))
	}

	listURL := fmt.Sprintf("%s/api/v1/tickets?%s", c.cfg.BaseURL, params.Encode())
	log.Info().Msg("Requesting tickets from tracker")
	log.Debug().Str("url", listURL).Msg("Tracker ticket list details")
	req, err := http.NewRequest("GET", listURL, nil)
	if err != nil {
		return nil, err
	}

	c.authenticateRequest(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "ticket list"); err != nil {
		return nil, err
	}

	var result TicketListResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode ticket list response: %w", err)
	}

	return MapTickets(&result), nil
}

func (c *restClient) ListTeamMembers() ([]TeamMember, error) {
	cacheKey := "team_members"
	if val, ok := c.getFromCache(cacheKey); ok {
		return val.([]TeamMember), nil
	}

	c.throttle()

	listURL := fmt.Sprintf("%s/api/v1/team-members", c.cfg.BaseURL)
	req, err := http.NewRequest("GET", listURL, nil)
	if err != nil {
		return nil, err
	}

	c.authenticateRequest(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "team member list"); err != nil {
		return nil, err
	}

	var result TeamMemberListResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode team member response: %w", err)
	}

	members := MapTeamMembers(&result)
	c.addToCache(cacheKey, members, 5*time.Minute)
	return members, nil
}

func checkStatus(resp *http.Response, what string) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("tracker authentication failed (401/403). Please check your access token.")
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		if retryAfter != "" {
			return fmt.Errorf("tracker rate limit exceeded (429). Retry after %s seconds.", retryAfter)
		}
		return fmt.Errorf("tracker rate limit exceeded (429).")
	default:
		return fmt.Errorf("tracker API returned status %d for %s. Please check tracker availability.", resp.StatusCode, what)
	}
}
