// Package catalog serves the feature catalogue over HTTP.
//
// Routes:
//   - GET  /catalog                         grouped catalogue
//   - GET  /catalog/categories              category names
//   - GET  /catalog/categories/:category    descriptors of one category
//   - GET  /catalog/features/:id            one descriptor
//   - GET  /catalog/search                  filtered descriptors
//   - GET  /catalog/stats                   counts per category, priority and effort
//   - POST /catalog/export                  uploads the catalogue to object storage
package catalog
