package siteforge

// Version of the client library.
const Version = "0.4.2"

const userAgent = "siteforge-go/" + Version
