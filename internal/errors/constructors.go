package errors

// Convenience functions for common error patterns

// Business record errors

func BusinessFileNotFound(path string) *SitegenError {
	return New(CategoryBusiness, SeverityFatal, "business file not found").
		WithContext("path", path)
}

func BusinessParseFailed(path string, cause error) *SitegenError {
	return Wrap(cause, CategoryBusiness, SeverityFatal, "business file could not be parsed").
		WithContext("path", path)
}

func BusinessNotMapping(path string) *SitegenError {
	return New(CategoryBusiness, SeverityFatal, "business file must contain a top-level mapping").
		WithContext("path", path)
}

// Config errors

func ConfigInvalid(field, reason string) *SitegenError {
	return New(CategoryConfig, SeverityFatal, "invalid configuration").
		WithContext("field", field).
		WithContext("reason", reason)
}

func ConfigParseFailed(path string, cause error) *SitegenError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file could not be parsed").
		WithContext("path", path)
}

// Generation errors

func TemplateFailed(name string, cause error) *SitegenError {
	return Wrap(cause, CategoryTemplate, SeverityError, "template processing failed").
		WithContext("template", name)
}

func EmitterFailed(name string, cause error) *SitegenError {
	return Wrap(cause, CategoryEmitter, SeverityError, "emitter failed").
		WithContext("emitter", name)
}

func OutputWriteFailed(path string, cause error) *SitegenError {
	return Wrap(cause, CategoryFileSystem, SeverityError, "output write failed").
		WithContext("path", path)
}

func InvalidJSONOutput(path string, cause error) *SitegenError {
	return Wrap(cause, CategoryValidation, SeverityWarning, "generated file is not valid JSON").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *SitegenError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
