package challonge

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	utils "github.com/FAB-TCG-Colombia/ChallongeAnalisis/internal/utils"
	models "github.com/FAB-TCG-Colombia/ChallongeAnalisis/models"

	resty "github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const (
	BASE_URL_V2      = "https://api.challonge.com/v2"
	DEFAULT_PER_PAGE = 200
	DEFAULT_TIMEOUT  = 30 * time.Second
	USER_AGENT       = "ChallongeAnalisis/1.0"
)

// Interface for the Challonge client used by the export job.
type ChallongeClient interface {
	GetTournaments(communityId string, year int) ([]models.Tournament, error)
}

// RetryPolicy bounds retries of server-side failures: up to MaxAttempts total
// requests per page, waiting WaitTime doubled per attempt and capped at
// MaxWaitTime between them.
type RetryPolicy struct {
	MaxAttempts int
	WaitTime    time.Duration
	MaxWaitTime time.Duration
}

var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 3,
	WaitTime:    1 * time.Second,
	MaxWaitTime: 5 * time.Second,
}

type ChallongeV2Client struct {
	baseUrl          string
	accessToken      string
	perPage          int
	legacyPagination bool
	httpClient       *resty.Client
}

func NewChallongeV2Client(baseUrl, accessToken string) *ChallongeV2Client {
	return NewChallongeV2ClientWithRetry(baseUrl, accessToken, DefaultRetryPolicy)
}

func NewChallongeV2ClientWithRetry(baseUrl, accessToken string, retry RetryPolicy) *ChallongeV2Client {
	if retry.MaxAttempts < 1 {
		retry.MaxAttempts = 1
	}
	httpClient := resty.New()
	httpClient.SetTimeout(DEFAULT_TIMEOUT).
		SetRetryCount(retry.MaxAttempts - 1).
		SetRetryWaitTime(retry.WaitTime).
		SetRetryMaxWaitTime(retry.MaxWaitTime).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Only server-side failures are retryable. Transport errors and
			// 4xx responses propagate immediately.
			return err == nil && r.StatusCode() >= 500 && r.StatusCode() <= 599
		}).
		SetRetryAfter(func(c *resty.Client, r *resty.Response) (time.Duration, error) {
			wait := retry.WaitTime << (r.Request.Attempt - 1)
			if wait > retry.MaxWaitTime {
				wait = retry.MaxWaitTime
			}
			return wait, nil
		})
	return &ChallongeV2Client{
		baseUrl:     baseUrl,
		accessToken: accessToken,
		perPage:     DEFAULT_PER_PAGE,
		httpClient:  httpClient,
	}
}

// SetLegacyPagination switches the client to the v1-style strategy that keeps
// incrementing the page number until an empty data page, for API variants that
// do not return pagination metadata.
func (c *ChallongeV2Client) SetLegacyPagination(enabled bool) {
	c.legacyPagination = enabled
}

// GetTournaments fetches all tournaments of a community whose start or
// creation date falls in the given year, normalized and in API order
// (page order, then within-page order).
func (c *ChallongeV2Client) GetTournaments(communityId string, year int) ([]models.Tournament, error) {

	url := c.baseUrl + "/communities/" + communityId + "/tournaments"

	results := make([]models.Tournament, 0)
	page := 1

	for {
		params := map[string]string{
			"state":    "all",
			"per_page": strconv.Itoa(c.perPage),
			"page":     strconv.Itoa(page),
		}

		var payload models.TournamentsPage
		if err := c.sendGetRequest(url, params, &payload); err != nil {
			return nil, err
		}

		for _, entry := range payload.Data {
			attributes := extractAttributes(entry)
			if !inYear(attributes, year) {
				continue
			}
			results = append(results, normalizeTournament(attributes))
		}

		if c.legacyPagination {
			if len(payload.Data) == 0 {
				break
			}
			page++
			continue
		}

		next := nextPage(payload, page)
		if next == 0 {
			break
		}
		page = next
	}

	return results, nil
}

// nextPage resolves the next page number from the pagination metadata:
// an explicit next_page counter, or current_page+1 when a next link is
// present, bounded by total_pages when the API reports one. Returns 0 when no
// valid next page remains.
func nextPage(payload models.TournamentsPage, currentPage int) int {
	current := payload.Meta.CurrentPage
	if current == 0 {
		current = currentPage
	}

	next := payload.Meta.NextPage
	if next == 0 && payload.Links.Next != "" {
		next = current + 1
	}
	if next == 0 {
		return 0
	}
	if payload.Meta.TotalPages > 0 && next > payload.Meta.TotalPages {
		return 0
	}
	return next
}

func (c *ChallongeV2Client) sendGetRequest(
	url string,
	params map[string]string,
	v interface{},
) error {
	headers := map[string]string{
		"Accept":        "application/json",
		"Authorization": "Bearer " + c.accessToken,
		"User-Agent":    USER_AGENT,
	}

	logrus.Debug("Sending GET request on url: " + url +
		" with params: " + utils.BuildQueryParams(params))

	resp, err := c.httpClient.R().
		SetHeaders(headers).
		SetQueryParams(params).
		Get(url)

	if err != nil {
		return err
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("sending GET request on url %s returned %d", url, resp.StatusCode())
	}

	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return err
	}

	return nil
}
