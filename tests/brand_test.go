package tests

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/xw1nchester/brand-management-backend/internal/apperror"
	"github.com/xw1nchester/brand-management-backend/internal/brand"
	"github.com/xw1nchester/brand-management-backend/internal/chain"
)

const (
	acmeCorpID = 1
	globexID   = 2
	umbrellaID = 4
)

func (s *APITestSuite) createBrand(name string, chainID int) brand.View {
	response := s.do(http.MethodPost, "/brands", fmt.Sprintf(`{"brandName":"%s","chainId":%d}`, name, chainID))
	s.Require().Equal(http.StatusCreated, response.StatusCode)

	created, err := decodeResponseBody[brand.View](response)
	s.Require().NoError(err)

	return *created
}

func (s *APITestSuite) TestChains() {
	response := s.do(http.MethodGet, "/chains", "")
	s.Equal(http.StatusOK, response.StatusCode)

	chains, err := decodeResponseBody[[]chain.Chain](response)
	s.Require().NoError(err)

	names := make([]string, 0, len(*chains))
	for _, c := range *chains {
		names = append(names, c.Name)
	}

	s.Equal([]string{"Acme Corp", "Globex", "Initech"}, names)
}

func (s *APITestSuite) TestBrandLifecycle() {
	created := s.createBrand("  Acme Pizza  ", acmeCorpID)
	s.Equal("Acme Pizza", created.Name)
	s.Equal("Acme Corp", created.ChainName)
	s.True(created.IsActive)

	// same name, other case, same chain
	response := s.do(http.MethodPost, "/brands", fmt.Sprintf(`{"brandName":"ACME PIZZA","chainId":%d}`, acmeCorpID))
	s.Equal(http.StatusConflict, response.StatusCode)
	errResp, err := decodeResponseBody[apperror.Response](response)
	s.Require().NoError(err)
	s.Equal("Brand 'ACME PIZZA' already exists under company 'Acme Corp'", errResp.Message)

	// same name under another chain is fine
	s.createBrand("Acme Pizza", globexID)

	// rename to the same name in other case succeeds
	response = s.do(http.MethodPut, fmt.Sprintf("/brands/%d", created.ID), fmt.Sprintf(`{"brandName":"acme pizza","chainId":"%d"}`, acmeCorpID))
	s.Equal(http.StatusOK, response.StatusCode)
	updated, err := decodeResponseBody[brand.View](response)
	s.Require().NoError(err)
	s.Equal("acme pizza", updated.Name)
	s.True(updated.CreatedAt.Equal(created.CreatedAt))
	s.False(updated.UpdatedAt.Before(created.UpdatedAt))

	response = s.do(http.MethodGet, fmt.Sprintf("/brands?chainId=%d", acmeCorpID), "")
	s.Equal(http.StatusOK, response.StatusCode)
	list, err := decodeResponseBody[[]brand.View](response)
	s.Require().NoError(err)
	s.Len(*list, 1)

	response = s.do(http.MethodDelete, fmt.Sprintf("/brands/%d", created.ID), "")
	response.Body.Close()
	s.Equal(http.StatusNoContent, response.StatusCode)

	response = s.do(http.MethodGet, fmt.Sprintf("/brands/%d", created.ID), "")
	response.Body.Close()
	s.Equal(http.StatusNotFound, response.StatusCode)

	response = s.do(http.MethodDelete, fmt.Sprintf("/brands/%d", created.ID), "")
	response.Body.Close()
	s.Equal(http.StatusNotFound, response.StatusCode)

	response = s.do(http.MethodPut, fmt.Sprintf("/brands/%d", created.ID), fmt.Sprintf(`{"brandName":"Acme Pizza","chainId":%d,"isActive":true}`, acmeCorpID))
	response.Body.Close()
	s.Equal(http.StatusNotFound, response.StatusCode)

	// name is free again after soft delete
	s.createBrand("Acme Pizza", acmeCorpID)
}

func (s *APITestSuite) TestBrandInactiveChain() {
	created := s.createBrand("Umbrella Labs", umbrellaID)
	s.Equal("Umbrella", created.ChainName)

	response := s.do(http.MethodGet, fmt.Sprintf("/brands?chainId=%d", umbrellaID), "")
	s.Equal(http.StatusOK, response.StatusCode)
	list, err := decodeResponseBody[[]brand.View](response)
	s.Require().NoError(err)
	s.Len(*list, 1)

	response = s.do(http.MethodGet, "/brands?chainId=999", "")
	response.Body.Close()
	s.Equal(http.StatusNotFound, response.StatusCode)

	response = s.do(http.MethodPost, "/brands", `{"brandName":"Nowhere","chainId":999}`)
	errResp, err := decodeResponseBody[apperror.Response](response)
	s.Require().NoError(err)
	s.Equal(http.StatusNotFound, errResp.Status)
	s.Equal("Chain not found with id: 999", errResp.Message)
}

func (s *APITestSuite) TestBrandValidation() {
	response := s.do(http.MethodPost, "/brands", fmt.Sprintf(`{"brandName":"%s","chainId":0}`, strings.Repeat("x", 51)))
	s.Equal(http.StatusBadRequest, response.StatusCode)

	errResp, err := decodeResponseBody[apperror.Response](response)
	s.Require().NoError(err)
	s.Equal(map[string]string{
		"brandName": "Brand name must not exceed 50 characters",
		"chainId":   "Chain ID (Company) is required",
	}, errResp.Details)
}

func (s *APITestSuite) TestBrandDeleteLinkedToZone() {
	ctx := context.Background()

	created := s.createBrand("Globex Grill", globexID)

	_, err := s.dbClient.Exec(ctx, "INSERT INTO zones (zone_name, brand_id) VALUES ($1, $2)", "North", created.ID)
	s.Require().NoError(err)

	response := s.do(http.MethodDelete, fmt.Sprintf("/brands/%d", created.ID), "")
	s.Equal(http.StatusConflict, response.StatusCode)
	errResp, err := decodeResponseBody[apperror.Response](response)
	s.Require().NoError(err)
	s.Equal("Brand 'Globex Grill' cannot be deleted because it is linked to one or more Zones.", errResp.Message)

	response = s.do(http.MethodGet, fmt.Sprintf("/brands/%d", created.ID), "")
	response.Body.Close()
	s.Equal(http.StatusOK, response.StatusCode)

	_, err = s.dbClient.Exec(ctx, "UPDATE zones SET is_active=false WHERE brand_id=$1", created.ID)
	s.Require().NoError(err)

	response = s.do(http.MethodDelete, fmt.Sprintf("/brands/%d", created.ID), "")
	response.Body.Close()
	s.Equal(http.StatusNoContent, response.StatusCode)
}

func (s *APITestSuite) TestBrandConcurrentCreate() {
	const attempts = 8

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		statuses = make(map[int]int)
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			body := fmt.Sprintf(`{"brandName":"Race","chainId":%d}`, acmeCorpID)
			response, err := http.Post(s.baseUrl+"/brands", "application/json", strings.NewReader(body))
			if err != nil {
				return
			}
			response.Body.Close()

			mu.Lock()
			statuses[response.StatusCode]++
			mu.Unlock()
		}()
	}

	wg.Wait()

	s.Equal(map[int]int{
		http.StatusCreated:  1,
		http.StatusConflict: attempts - 1,
	}, statuses)
}
