// Package domain contains the core entities of the photo API: users,
// albums, and photos. Entities carry their own validation rules so that
// stores and services can rely on well-formed data.
package domain
