package shopify

// Fixed Admin API query and mutation shapes. These are the external API
// contract; the repository owns translating their responses.

const getMetaobjectDefinitions = `
  query GetMetaobjectDefinitions {
    metaobjectDefinitions(first: 50) {
      nodes {
        id
        name
        type
        fieldDefinitions {
          name
          key
          type {
            name
          }
          required
        }
      }
    }
  }
`

const getMetaobjectsByType = `
  query GetMetaobjectsByType($type: String!, $first: Int = 50) {
    metaobjects(type: $type, first: $first) {
      nodes {
        id
        handle
        type
        fields {
          key
          value
          reference {
            ... on Collection {
              id
              title
              handle
            }
            ... on MediaImage {
              id
              image {
                url
                altText
              }
            }
          }
        }
        updatedAt
      }
    }
  }
`

const createMetaobjectDefinition = `
  mutation CreateMetaobjectDefinition($definition: MetaobjectDefinitionCreateInput!) {
    metaobjectDefinitionCreate(definition: $definition) {
      metaobjectDefinition {
        id
        name
        type
      }
      userErrors {
        field
        message
        code
      }
    }
  }
`

const createMetaobject = `
  mutation CreateMetaobject($metaobject: MetaobjectCreateInput!) {
    metaobjectCreate(metaobject: $metaobject) {
      metaobject {
        id
        handle
        type
      }
      userErrors {
        field
        message
        code
      }
    }
  }
`

const updateMetaobject = `
  mutation UpdateMetaobject($id: ID!, $metaobject: MetaobjectUpdateInput!) {
    metaobjectUpdate(id: $id, metaobject: $metaobject) {
      metaobject {
        id
        handle
      }
      userErrors {
        field
        message
        code
      }
    }
  }
`

const deleteMetaobject = `
  mutation DeleteMetaobject($id: ID!) {
    metaobjectDelete(id: $id) {
      deletedId
      userErrors {
        field
        message
        code
      }
    }
  }
`

const getShopInfo = `
  query GetShopInfo {
    shop {
      id
      name
      email
      myshopifyDomain
      primaryDomain {
        url
      }
    }
  }
`

const getCollections = `
  query GetCollections($first: Int = 50) {
    collections(first: $first) {
      nodes {
        id
        title
        handle
        image {
          url
          altText
        }
        productsCount {
          count
        }
      }
    }
  }
`

const getLocations = `
  query GetLocations {
    locations(first: 50) {
      nodes {
        id
        name
        address {
          formatted
        }
      }
    }
  }
`
