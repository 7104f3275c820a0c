// Package marketplace implements the backend for a secondhand clothing
// marketplace: users register, log in with email and password, list garments,
// browse and favorite listings, keep a cart, and message each other about items.
//
// Identity is stateless. A login issues a signed, time-bounded bearer token;
// every subsequent request resolves that token into a Principal which travels
// in the request context. Mutations on owned resources go through a single
// ownership policy. There is no server-side session state and no revocation
// list; tokens die at expiry.
package marketplace
