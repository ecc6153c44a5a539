package mysql

const upsertHotelSQL = `
INSERT INTO hotels
  (id, name, booking_link, rating, address, description, images, lat, lng,
   score_staff, score_facilities, score_cleanliness, score_comfort,
   score_value, score_location, score_wifi)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name              = VALUES(name),
  booking_link      = VALUES(booking_link),
  rating            = VALUES(rating),
  address           = VALUES(address),
  description       = VALUES(description),
  images            = VALUES(images),
  lat               = VALUES(lat),
  lng               = VALUES(lng),
  score_staff       = VALUES(score_staff),
  score_facilities  = VALUES(score_facilities),
  score_cleanliness = VALUES(score_cleanliness),
  score_comfort     = VALUES(score_comfort),
  score_value       = VALUES(score_value),
  score_location    = VALUES(score_location),
  score_wifi        = VALUES(score_wifi),
  updated_at        = CURRENT_TIMESTAMP
`

const upsertEmbeddingSQL = `
UPDATE hotels SET embedding = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Catalog load at API startup. Ordered by id so the in-memory catalog (and
// therefore tie-breaking) is deterministic across restarts.
const listHotelsSQL = `
SELECT
  id, name, booking_link, rating, address, description, images, lat, lng,
  score_staff, score_facilities, score_cleanliness, score_comfort,
  score_value, score_location, score_wifi,
  embedding
FROM hotels
ORDER BY id
`

const listMissingEmbeddingsSQL = `
SELECT
  id, name, booking_link, rating, address, description, images, lat, lng,
  score_staff, score_facilities, score_cleanliness, score_comfort,
  score_value, score_location, score_wifi,
  embedding
FROM hotels
WHERE embedding IS NULL
ORDER BY id
`
