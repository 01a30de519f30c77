// Package models defines the typed records mirrored from the hosted
// collection backend.
//
// # Records
//
//   - User: an authenticated account (the "users" collection)
//   - Item: a tracked item owned by a user (the "items" collection)
//   - Price: a single price observation for an item (the "prices" collection)
//
// Every record arriving from the backend is decoded into one of these
// types and passed through Validate before it is trusted; the backend's
// payload shape is never assumed implicitly.
//
// # Design principles
//
//  1. Relationships are ID strings, not pointers, to avoid circular
//     references (an Item carries the owning user's ID, a Price carries
//     the item's ID).
//  2. Referential integrity (price -> item -> user) is enforced by the
//     backend's relation fields, not here.
//  3. Prices are append-only from this application's point of view: they
//     are created and (during item deletion) deleted, never edited.
package models
