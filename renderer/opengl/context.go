package opengl

import "github.com/go-gl/gl/v4.3-core/gl"

// Information about the current GL context.
type ContextInfo struct {
	Vendor      string
	Renderer    string
	Version     string
	GLSLVersion string

	// Maximum compute work group counts along x and y.
	MaxWorkGroups [2]int32
}

// Query the current GL context.
func DescribeContext() ContextInfo {
	info := ContextInfo{
		Vendor:      gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:    gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:     gl.GoStr(gl.GetString(gl.VERSION)),
		GLSLVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
	gl.GetIntegeri_v(gl.MAX_COMPUTE_WORK_GROUP_COUNT, 0, &info.MaxWorkGroups[0])
	gl.GetIntegeri_v(gl.MAX_COMPUTE_WORK_GROUP_COUNT, 1, &info.MaxWorkGroups[1])
	return info
}
