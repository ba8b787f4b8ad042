// Package createproduct implements the Create Product use case.
//
// Adding a product to the catalog notifies core.ProductCreated, which triggers
// the e-mail notification to the catalog team.
// Creating a product with an id that already exists is an idempotent no-op.
package createproduct
