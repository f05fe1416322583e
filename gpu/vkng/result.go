// Package vkng implements the gpu interfaces on top of vkngwrapper. It is the only package in
// vkmol that talks to a driver, so it is exercised by running cmd/vkmol rather than by unit tests.
package vkng

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
	"github.com/vkngwrapper/vkmol/gpu"
)

// check turns a vkngwrapper result pair into a single error. Device loss is marked with
// gpu.ErrDeviceLost so that callers several layers up can recognize it.
func check(res common.VkResult, err error, action string) error {
	if err == nil {
		return nil
	}

	if res == core1_0.VKErrorDeviceLost {
		err = errors.Mark(err, gpu.ErrDeviceLost)
	}

	return errors.Wrapf(err, "%s returned %v", action, res)
}

// presentStatus maps the results acquire and present may return without failing the frame
func presentStatus(res common.VkResult, err error, action string) (gpu.Status, error) {
	switch res {
	case khr_swapchain.VKErrorOutOfDate:
		return gpu.StatusOutOfDate, nil
	case khr_swapchain.VKSuboptimal:
		return gpu.StatusSuboptimal, nil
	}

	return gpu.StatusSuccess, check(res, err, action)
}
