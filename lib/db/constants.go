package db

const DocumentDoesNotExistError = "document not found"
