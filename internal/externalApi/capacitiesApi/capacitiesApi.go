package capacitiesApi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"goodreads_capacities_import/config"
	"goodreads_capacities_import/internal/model"
	"goodreads_capacities_import/utils"
)

const (
	spaceInfoPath = "/space-info"
	objectsPath   = "/objects"
)

type CapacitiesApi struct {
	cfg    *config.Config
	client *http.Client
}

func New(cfg *config.Config) *CapacitiesApi {
	return &CapacitiesApi{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Capacities.HttpTimeout},
	}
}

// GetSpaceInfo fetches the structures and property definitions of the
// configured space.
func (c *CapacitiesApi) GetSpaceInfo(ctx context.Context) (model.SpaceInfo, error) {
	op := "CapacitiesApi.GetSpaceInfo"
	rqID := utils.GetRequestIDFromCtx(ctx)

	params := url.Values{}
	params.Set("spaceid", c.cfg.Capacities.SpaceID)
	fullURL := c.cfg.Capacities.BaseUrl + spaceInfoPath + "?" + params.Encode()

	slog.Info("GetSpaceInfo start", slog.String("rqID", rqID), slog.String("op", op), slog.String("url", fullURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return model.SpaceInfo{}, err
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return model.SpaceInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.SpaceInfo{}, statusError(resp)
	}

	var info model.SpaceInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return model.SpaceInfo{}, fmt.Errorf("decode space info: %w", err)
	}

	slog.Info(
		"GetSpaceInfo finished",
		slog.String("rqID", rqID),
		slog.String("op", op),
		slog.Int("structures", len(info.Structures)),
	)

	return info, nil
}

// CreateObject posts one object. 200 and 201 count as success; any other
// status comes back as *StatusError.
func (c *CapacitiesApi) CreateObject(ctx context.Context, object model.CreateObjectRequest) error {
	op := "CapacitiesApi.CreateObject"
	rqID := utils.GetRequestIDFromCtx(ctx)

	body, err := json.Marshal(object)
	if err != nil {
		return fmt.Errorf("marshal object: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Capacities.BaseUrl+objectsPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return statusError(resp)
	}

	slog.Debug(
		"CreateObject finished",
		slog.String("rqID", rqID),
		slog.String("op", op),
		slog.String("title", object.Title),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}

func (c *CapacitiesApi) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.Capacities.ApiToken)
}

func statusError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body err: %w", err)
	}
	return &StatusError{Code: resp.StatusCode, Body: string(body)}
}
