// Command boutique is the SMART Boutique storefront client. It browses the
// catalog, manages a persistent shopping cart, submits orders, and offers
// styling advice and voice-driven cart additions on top of the boutique
// backend API.
package main
