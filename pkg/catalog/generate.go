package catalog

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_catalog_client.go strmsync/pkg/catalog Client
