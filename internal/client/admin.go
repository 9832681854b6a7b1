package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"SonicSavor/internal/entity"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type ordersResponse struct {
	Orders []entity.Order `json:"orders"`
}

type orderUpdateResponse struct {
	Message string       `json:"message"`
	Order   entity.Order `json:"order"`
}

type reservationsResponse struct {
	Reservations []entity.Reservation `json:"reservations"`
}

type UploadResult struct {
	DocumentID string `json:"document_id"`
	Chunks     int    `json:"chunks"`
	Location   string `json:"location"`
}

type uploadResponse struct {
	Message string       `json:"message"`
	Result  UploadResult `json:"result"`
}

// Login exchanges credentials for a bearer token and persists it.
func (c *Client) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var res tokenResponse
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/token",
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}, &res); err != nil {
		return err
	}

	return c.tokens.Save(res.AccessToken)
}

// Logout revokes the token server side and always forgets it locally.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/logout",
		auth:   true,
	}, nil)

	if clearErr := c.tokens.Clear(); clearErr != nil {
		return clearErr
	}
	return err
}

func (c *Client) LoggedIn() bool {
	token, err := c.tokens.Load()
	return err == nil && token != ""
}

func (c *Client) ListOrders(ctx context.Context) ([]entity.Order, error) {
	var res ordersResponse
	if err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/admin/orders",
		auth:   true,
	}, &res); err != nil {
		return nil, err
	}
	return res.Orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (entity.Order, error) {
	body, err := jsonBody(map[string]string{"status": string(status)})
	if err != nil {
		return entity.Order{}, err
	}

	var res orderUpdateResponse
	if err := c.do(ctx, request{
		method:      http.MethodPatch,
		path:        "/admin/orders/" + strconv.FormatInt(orderID, 10),
		body:        body,
		contentType: "application/json",
		auth:        true,
	}, &res); err != nil {
		return entity.Order{}, err
	}
	return res.Order, nil
}

func (c *Client) ListReservations(ctx context.Context) ([]entity.Reservation, error) {
	var res reservationsResponse
	if err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/admin/reservations",
		auth:   true,
	}, &res); err != nil {
		return nil, err
	}
	return res.Reservations, nil
}

// UploadDocument sends the file at path as a multipart upload.
func (c *Client) UploadDocument(ctx context.Context, path string, kind entity.DocumentKind) (UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return UploadResult{}, err
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if kind != "" {
		if err := w.WriteField("kind", string(kind)); err != nil {
			return UploadResult{}, err
		}
	}
	part, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return UploadResult{}, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return UploadResult{}, err
	}
	if err := w.Close(); err != nil {
		return UploadResult{}, fmt.Errorf("close multipart body: %w", err)
	}

	var res uploadResponse
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/admin/upload-document",
		body:        &buf,
		contentType: w.FormDataContentType(),
		auth:        true,
	}, &res); err != nil {
		return UploadResult{}, err
	}
	return res.Result, nil
}
