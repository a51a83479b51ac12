package bitrix

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"call-quality-backend/internal/config"
	apperrors "call-quality-backend/internal/errors"
	"call-quality-backend/internal/logger"
)

// REST method names, same set the source system calls
const (
	methodCallList = "voximplant.statistic.get"
	methodDealList = "crm.deal.list"
	methodDealInfo = "crm.deal.get"
	methodFileInfo = "disk.file.get"
	methodUserInfo = "user.get"
)

// CallFact is one entry of the voximplant call statistics. Bitrix returns
// every field as a string.
type CallFact struct {
	ID            string `json:"ID"`
	PortalUserID  string `json:"PORTAL_USER_ID"`
	RecordFileID  string `json:"RECORD_FILE_ID"`
	CallType      string `json:"CALL_TYPE"`
	CallStartDate string `json:"CALL_START_DATE"`
	CallDuration  string `json:"CALL_DURATION"`
	CRMEntityType string `json:"CRM_ENTITY_TYPE"`
	CRMEntityID   string `json:"CRM_ENTITY_ID"`
	CRMActivityID string `json:"CRM_ACTIVITY_ID"`
	PortalNumber  string `json:"PORTAL_NUMBER"`
	PhoneNumber   string `json:"PHONE_NUMBER"`
}

// UserProfile is one entry of the portal user directory
type UserProfile struct {
	ID       string `json:"ID"`
	Active   bool   `json:"ACTIVE"`
	Name     string `json:"NAME"`
	LastName string `json:"LAST_NAME"`
	Email    string `json:"EMAIL"`
}

// Client talks to the Bitrix24 REST API through an inbound webhook. It
// implements both Directory and Publisher.
type Client struct {
	portalURL  string
	webhook    string
	audioDir   string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates a Bitrix24 client from config
func NewClient(cfg *config.Config) *Client {
	return &Client{
		portalURL:  strings.TrimRight(cfg.BitrixURL, "/"),
		webhook:    cfg.BitrixWebhook,
		audioDir:   cfg.AudioDir,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.New().WithField("client", "bitrix"),
	}
}

// PortalURL returns the portal base URL, used to assemble deal links
func (c *Client) PortalURL() string {
	return c.portalURL
}

type restEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// get performs a webhook GET and returns the raw "result" payload
func (c *Client) get(ctx context.Context, method string, params url.Values) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/rest/%s/%s.json", c.portalURL, c.webhook, method)
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.ExternalUnavailableError{Service: "bitrix", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &apperrors.ExternalUnavailableError{
			Service: "bitrix",
			Cause:   fmt.Errorf("%s returned %d: %s", method, resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var envelope restEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &apperrors.MalformedResponseError{Service: "bitrix", Detail: err.Error()}
	}
	return envelope.Result, nil
}

// ListCalls fetches call statistics starting at the high-water-mark, oldest
// first so the caller can advance the mark to the last entry.
func (c *Client) ListCalls(ctx context.Context, since time.Time) ([]CallFact, error) {
	params := url.Values{}
	params.Set("filter[>=CALL_START_DATE]", since.Format(time.RFC3339))
	params.Set("SORT", "ID")
	params.Set("ORDER", "ASC")

	result, err := c.get(ctx, methodCallList, params)
	if err != nil {
		return nil, err
	}

	var facts []CallFact
	if err := json.Unmarshal(result, &facts); err != nil {
		return nil, &apperrors.MalformedResponseError{Service: "bitrix", Detail: "call list: " + err.Error()}
	}
	return facts, nil
}

// GetUser fetches one portal user profile
func (c *Client) GetUser(ctx context.Context, userID string) (*UserProfile, error) {
	params := url.Values{}
	params.Set("ID", userID)

	result, err := c.get(ctx, methodUserInfo, params)
	if err != nil {
		return nil, err
	}

	// user.get answers with a list even for a single id
	var profiles []UserProfile
	if err := json.Unmarshal(result, &profiles); err != nil {
		return nil, &apperrors.MalformedResponseError{Service: "bitrix", Detail: "user info: " + err.Error()}
	}
	if len(profiles) == 0 {
		return nil, apperrors.ErrUserNotFound
	}
	return &profiles[0], nil
}

// GetDealID resolves the deal attached to a CRM entity. Empty string when the
// entity has no deal.
func (c *Client) GetDealID(ctx context.Context, entityType, entityID string) (string, error) {
	params := url.Values{}
	params.Set(fmt.Sprintf("filter[%s_ID]", entityType), entityID)

	result, err := c.get(ctx, methodDealList, params)
	if err != nil {
		return "", err
	}

	var deals []struct {
		ID string `json:"ID"`
	}
	if err := json.Unmarshal(result, &deals); err != nil {
		return "", &apperrors.MalformedResponseError{Service: "bitrix", Detail: "deal list: " + err.Error()}
	}
	if len(deals) == 0 {
		return "", nil
	}
	return deals[0].ID, nil
}

// GetDealStage fetches the pipeline stage of a deal
func (c *Client) GetDealStage(ctx context.Context, dealID string) (string, error) {
	params := url.Values{}
	params.Set("ID", dealID)

	result, err := c.get(ctx, methodDealInfo, params)
	if err != nil {
		return "", err
	}

	var deal struct {
		StageID string `json:"STAGE_ID"`
	}
	if err := json.Unmarshal(result, &deal); err != nil {
		return "", &apperrors.MalformedResponseError{Service: "bitrix", Detail: "deal info: " + err.Error()}
	}
	return deal.StageID, nil
}

// DownloadRecording resolves the recording file behind a disk file id and
// stores it in the audio directory as "<fileID>_<name>". Returns the stored
// file name.
func (c *Client) DownloadRecording(ctx context.Context, fileID string) (string, error) {
	params := url.Values{}
	params.Set("id", fileID)

	result, err := c.get(ctx, methodFileInfo, params)
	if err != nil {
		return "", err
	}

	var info struct {
		Name        string `json:"NAME"`
		DownloadURL string `json:"DOWNLOAD_URL"`
	}
	if err := json.Unmarshal(result, &info); err != nil {
		return "", &apperrors.MalformedResponseError{Service: "bitrix", Detail: "file info: " + err.Error()}
	}
	if info.DownloadURL == "" {
		return "", &apperrors.MalformedResponseError{Service: "bitrix", Detail: "file info: missing download url"}
	}

	fileName := fmt.Sprintf("%s_%s", fileID, info.Name)
	if err := c.saveFile(ctx, info.DownloadURL, fileName); err != nil {
		return "", err
	}

	c.log.WithField("file_name", fileName).Info("call recording downloaded")
	return fileName, nil
}

func (c *Client) saveFile(ctx context.Context, downloadURL, fileName string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperrors.ExternalUnavailableError{Service: "bitrix", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &apperrors.ExternalUnavailableError{
			Service: "bitrix",
			Cause:   fmt.Errorf("recording download returned %d", resp.StatusCode),
		}
	}

	if err := os.MkdirAll(c.audioDir, 0o755); err != nil {
		return fmt.Errorf("create audio dir: %w", err)
	}
	out, err := os.Create(filepath.Join(c.audioDir, fileName))
	if err != nil {
		return fmt.Errorf("create recording file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("write recording file: %w", err)
	}
	return nil
}
