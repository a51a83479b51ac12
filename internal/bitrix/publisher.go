package bitrix

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	apperrors "call-quality-backend/internal/errors"

	"github.com/google/uuid"
)

const (
	methodElementAdd = "lists.element.add"

	// Quality assessment process list on the portal
	qualityIBlockID     = "110"
	qualityIBlockTypeID = "bitrix_processes"

	// List property carrying the element code
	propertyElementCode = "PROPERTY_1022"
)

// PostQualityRecord publishes one scored call as a process list element.
// The fields map carries FIELDS[...] keys (NAME plus PROPERTY_* values); the
// element code is generated per post.
func (c *Client) PostQualityRecord(ctx context.Context, fields map[string]string) error {
	elementCode := uuid.NewString()

	params := url.Values{}
	params.Set("IBLOCK_ID", qualityIBlockID)
	params.Set("IBLOCK_TYPE_ID", qualityIBlockTypeID)
	params.Set("ELEMENT_CODE", elementCode)
	params.Set(fmt.Sprintf("FIELDS[%s]", propertyElementCode), elementCode)
	for key, value := range fields {
		params.Set(fmt.Sprintf("FIELDS[%s]", key), value)
	}

	endpoint := fmt.Sprintf("%s/rest/%s/%s.json?%s", c.portalURL, c.webhook, methodElementAdd, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperrors.ExternalUnavailableError{Service: "bitrix", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &apperrors.ExternalUnavailableError{
			Service: "bitrix",
			Cause:   fmt.Errorf("element add returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}
	return nil
}
